package pb

import (
	"strconv"

	"google.golang.org/protobuf/encoding/protowire"
)

type Result int32

const (
	Result_RESULT_UNSPECIFIED Result = 0
	Result_TOO_LOW            Result = 1
	Result_TOO_HIGH           Result = 2
	Result_CORRECT            Result = 3
)

var Result_name = map[int32]string{
	0: "RESULT_UNSPECIFIED",
	1: "TOO_LOW",
	2: "TOO_HIGH",
	3: "CORRECT",
}

func (x Result) String() string {
	if s, ok := Result_name[int32(x)]; ok {
		return s
	}
	return strconv.Itoa(int(x))
}

type GuessRequest struct {
	Guess int32 `protobuf:"varint,1,opt,name=guess,proto3" json:"guess,omitempty" validate:"gte=1,lte=100"`
}

func (x *GuessRequest) GetGuess() int32 {
	if x != nil {
		return x.Guess
	}
	return 0
}

func (x *GuessRequest) appendWire(b []byte) []byte {
	return appendInt32(b, 1, x.Guess)
}

func (x *GuessRequest) consumeWire(b []byte) error {
	*x = GuessRequest{}
	return walkFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, error) {
		if num != 1 {
			return 0, nil
		}
		u, n, err := consumeVarint(typ, v)
		x.Guess = int32(u)
		return n, err
	})
}

type GuessResponse struct {
	Attempt int32  `protobuf:"varint,1,opt,name=attempt,proto3" json:"attempt,omitempty"`
	Result  Result `protobuf:"varint,2,opt,name=result,proto3,enum=bank.v1.Result" json:"result,omitempty"`
}

func (x *GuessResponse) GetAttempt() int32 {
	if x != nil {
		return x.Attempt
	}
	return 0
}

func (x *GuessResponse) GetResult() Result {
	if x != nil {
		return x.Result
	}
	return Result_RESULT_UNSPECIFIED
}

func (x *GuessResponse) appendWire(b []byte) []byte {
	b = appendInt32(b, 1, x.Attempt)
	return appendInt32(b, 2, int32(x.Result))
}

func (x *GuessResponse) consumeWire(b []byte) error {
	*x = GuessResponse{}
	return walkFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, error) {
		switch num {
		case 1:
			u, n, err := consumeVarint(typ, v)
			x.Attempt = int32(u)
			return n, err
		case 2:
			u, n, err := consumeVarint(typ, v)
			x.Result = Result(int32(u))
			return n, err
		}
		return 0, nil
	})
}
