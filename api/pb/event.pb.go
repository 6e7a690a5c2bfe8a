package pb

import "google.golang.org/protobuf/encoding/protowire"

// LedgerEvent is published for every committed ledger mutation.
type LedgerEvent struct {
	Seq         uint64 `protobuf:"varint,1,opt,name=seq,proto3" json:"seq,omitempty"`
	Kind        string `protobuf:"bytes,2,opt,name=kind,proto3" json:"kind,omitempty"`
	FromAccount int32  `protobuf:"varint,3,opt,name=from_account,proto3" json:"from_account,omitempty"`
	ToAccount   int32  `protobuf:"varint,4,opt,name=to_account,proto3" json:"to_account,omitempty"`
	Amount      int64  `protobuf:"varint,5,opt,name=amount,proto3" json:"amount,omitempty"`
	Identity    string `protobuf:"bytes,6,opt,name=identity,proto3" json:"identity,omitempty"`
	AtUnixNano  int64  `protobuf:"varint,7,opt,name=at_unix_nano,proto3" json:"at_unix_nano,omitempty"`
}

func (x *LedgerEvent) appendWire(b []byte) []byte {
	b = appendUint64(b, 1, x.Seq)
	b = appendString(b, 2, x.Kind)
	b = appendInt32(b, 3, x.FromAccount)
	b = appendInt32(b, 4, x.ToAccount)
	b = appendInt64(b, 5, x.Amount)
	b = appendString(b, 6, x.Identity)
	return appendInt64(b, 7, x.AtUnixNano)
}

func (x *LedgerEvent) consumeWire(b []byte) error {
	*x = LedgerEvent{}
	return walkFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, error) {
		switch num {
		case 1:
			u, n, err := consumeVarint(typ, v)
			x.Seq = u
			return n, err
		case 2, 6:
			raw, n, err := consumeBytes(typ, v)
			if num == 2 {
				x.Kind = string(raw)
			} else {
				x.Identity = string(raw)
			}
			return n, err
		case 3:
			u, n, err := consumeVarint(typ, v)
			x.FromAccount = int32(u)
			return n, err
		case 4:
			u, n, err := consumeVarint(typ, v)
			x.ToAccount = int32(u)
			return n, err
		case 5:
			u, n, err := consumeVarint(typ, v)
			x.Amount = int64(u)
			return n, err
		case 7:
			u, n, err := consumeVarint(typ, v)
			x.AtUnixNano = int64(u)
			return n, err
		}
		return 0, nil
	})
}
