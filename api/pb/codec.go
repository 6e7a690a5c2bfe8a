package pb

import (
	"fmt"

	"google.golang.org/grpc/encoding"
	protoenc "google.golang.org/grpc/encoding/proto"
	"google.golang.org/grpc/mem"
	"google.golang.org/protobuf/proto"
)

// Name is the codec name. It replaces the stock protobuf codec, which this
// codec falls back to for generated messages.
const Name = protoenc.Name

func init() {
	encoding.RegisterCodecV2(codec{})
}

// Marshal encodes a bank.v1 message or any proto.Message.
func Marshal(v any) ([]byte, error) {
	switch m := v.(type) {
	case wireMessage:
		return m.appendWire(nil), nil
	case proto.Message:
		return proto.Marshal(m)
	default:
		return nil, fmt.Errorf("pb: cannot marshal %T", v)
	}
}

// Unmarshal decodes b into a bank.v1 message or any proto.Message.
func Unmarshal(b []byte, v any) error {
	switch m := v.(type) {
	case wireMessage:
		if err := m.consumeWire(b); err != nil {
			return fmt.Errorf("pb: unmarshal %T: %w", v, err)
		}
		return nil
	case proto.Message:
		return proto.Unmarshal(b, m)
	default:
		return fmt.Errorf("pb: cannot unmarshal into %T", v)
	}
}

type codec struct{}

func (codec) Marshal(v any) (mem.BufferSlice, error) {
	b, err := Marshal(v)
	if err != nil {
		return nil, err
	}
	return mem.BufferSlice{mem.SliceBuffer(b)}, nil
}

func (codec) Unmarshal(data mem.BufferSlice, v any) error {
	buf := data.MaterializeToBuffer(mem.DefaultBufferPool())
	defer buf.Free()
	return Unmarshal(buf.ReadOnlyData(), v)
}

func (codec) Name() string {
	return Name
}
