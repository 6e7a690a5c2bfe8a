package pb

import (
	"strconv"

	"google.golang.org/protobuf/encoding/protowire"
)

type TransferStatus int32

const (
	TransferStatus_TRANSFER_STATUS_UNSPECIFIED TransferStatus = 0
	TransferStatus_COMPLETED                   TransferStatus = 1
	TransferStatus_REJECTED                    TransferStatus = 2
)

var TransferStatus_name = map[int32]string{
	0: "TRANSFER_STATUS_UNSPECIFIED",
	1: "COMPLETED",
	2: "REJECTED",
}

func (x TransferStatus) String() string {
	if s, ok := TransferStatus_name[int32(x)]; ok {
		return s
	}
	return strconv.Itoa(int(x))
}

type TransferRequest struct {
	FromAccount int32 `protobuf:"varint,1,opt,name=from_account,proto3" json:"from_account,omitempty" validate:"gt=0"`
	ToAccount   int32 `protobuf:"varint,2,opt,name=to_account,proto3" json:"to_account,omitempty" validate:"gt=0"`
	Amount      int64 `protobuf:"varint,3,opt,name=amount,proto3" json:"amount,omitempty" validate:"gt=0"`
}

func (x *TransferRequest) GetFromAccount() int32 {
	if x != nil {
		return x.FromAccount
	}
	return 0
}

func (x *TransferRequest) GetToAccount() int32 {
	if x != nil {
		return x.ToAccount
	}
	return 0
}

func (x *TransferRequest) GetAmount() int64 {
	if x != nil {
		return x.Amount
	}
	return 0
}

func (x *TransferRequest) appendWire(b []byte) []byte {
	b = appendInt32(b, 1, x.FromAccount)
	b = appendInt32(b, 2, x.ToAccount)
	return appendInt64(b, 3, x.Amount)
}

func (x *TransferRequest) consumeWire(b []byte) error {
	*x = TransferRequest{}
	return walkFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, error) {
		switch num {
		case 1:
			u, n, err := consumeVarint(typ, v)
			x.FromAccount = int32(u)
			return n, err
		case 2:
			u, n, err := consumeVarint(typ, v)
			x.ToAccount = int32(u)
			return n, err
		case 3:
			u, n, err := consumeVarint(typ, v)
			x.Amount = int64(u)
			return n, err
		}
		return 0, nil
	})
}

type TransferResponse struct {
	Status      TransferStatus  `protobuf:"varint,1,opt,name=status,proto3,enum=bank.v1.TransferStatus" json:"status,omitempty"`
	FromAccount *AccountBalance `protobuf:"bytes,2,opt,name=from_account,proto3" json:"from_account,omitempty"`
	ToAccount   *AccountBalance `protobuf:"bytes,3,opt,name=to_account,proto3" json:"to_account,omitempty"`
}

func (x *TransferResponse) GetStatus() TransferStatus {
	if x != nil {
		return x.Status
	}
	return TransferStatus_TRANSFER_STATUS_UNSPECIFIED
}

func (x *TransferResponse) GetFromAccount() *AccountBalance {
	if x != nil {
		return x.FromAccount
	}
	return nil
}

func (x *TransferResponse) GetToAccount() *AccountBalance {
	if x != nil {
		return x.ToAccount
	}
	return nil
}

func (x *TransferResponse) appendWire(b []byte) []byte {
	b = appendInt32(b, 1, int32(x.Status))
	if x.FromAccount != nil {
		b = appendMessage(b, 2, x.FromAccount)
	}
	if x.ToAccount != nil {
		b = appendMessage(b, 3, x.ToAccount)
	}
	return b
}

func (x *TransferResponse) consumeWire(b []byte) error {
	*x = TransferResponse{}
	return walkFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, error) {
		switch num {
		case 1:
			u, n, err := consumeVarint(typ, v)
			x.Status = TransferStatus(int32(u))
			return n, err
		case 2, 3:
			raw, n, err := consumeBytes(typ, v)
			if err != nil {
				return n, err
			}
			a := new(AccountBalance)
			if err := a.consumeWire(raw); err != nil {
				return n, err
			}
			if num == 2 {
				x.FromAccount = a
			} else {
				x.ToAccount = a
			}
			return n, nil
		}
		return 0, nil
	})
}
