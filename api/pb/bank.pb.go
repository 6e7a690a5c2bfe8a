package pb

import "google.golang.org/protobuf/encoding/protowire"

type BalanceCheckRequest struct {
	AccountNumber int32 `protobuf:"varint,1,opt,name=account_number,proto3" json:"account_number,omitempty" validate:"gt=0"`
}

func (x *BalanceCheckRequest) GetAccountNumber() int32 {
	if x != nil {
		return x.AccountNumber
	}
	return 0
}

func (x *BalanceCheckRequest) appendWire(b []byte) []byte {
	return appendInt32(b, 1, x.AccountNumber)
}

func (x *BalanceCheckRequest) consumeWire(b []byte) error {
	*x = BalanceCheckRequest{}
	return walkFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, error) {
		if num != 1 {
			return 0, nil
		}
		u, n, err := consumeVarint(typ, v)
		x.AccountNumber = int32(u)
		return n, err
	})
}

type AccountBalance struct {
	AccountNumber int32 `protobuf:"varint,1,opt,name=account_number,proto3" json:"account_number,omitempty"`
	Balance       int64 `protobuf:"varint,2,opt,name=balance,proto3" json:"balance,omitempty"`
}

func (x *AccountBalance) GetAccountNumber() int32 {
	if x != nil {
		return x.AccountNumber
	}
	return 0
}

func (x *AccountBalance) GetBalance() int64 {
	if x != nil {
		return x.Balance
	}
	return 0
}

func (x *AccountBalance) appendWire(b []byte) []byte {
	b = appendInt32(b, 1, x.AccountNumber)
	return appendInt64(b, 2, x.Balance)
}

func (x *AccountBalance) consumeWire(b []byte) error {
	*x = AccountBalance{}
	return walkFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, error) {
		switch num {
		case 1:
			u, n, err := consumeVarint(typ, v)
			x.AccountNumber = int32(u)
			return n, err
		case 2:
			u, n, err := consumeVarint(typ, v)
			x.Balance = int64(u)
			return n, err
		}
		return 0, nil
	})
}

type AllAccountsResponse struct {
	Accounts []*AccountBalance `protobuf:"bytes,1,rep,name=accounts,proto3" json:"accounts,omitempty"`
}

func (x *AllAccountsResponse) GetAccounts() []*AccountBalance {
	if x != nil {
		return x.Accounts
	}
	return nil
}

func (x *AllAccountsResponse) appendWire(b []byte) []byte {
	for _, a := range x.Accounts {
		b = appendMessage(b, 1, a)
	}
	return b
}

func (x *AllAccountsResponse) consumeWire(b []byte) error {
	*x = AllAccountsResponse{}
	return walkFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, error) {
		if num != 1 {
			return 0, nil
		}
		raw, n, err := consumeBytes(typ, v)
		if err != nil {
			return n, err
		}
		a := new(AccountBalance)
		if err := a.consumeWire(raw); err != nil {
			return n, err
		}
		x.Accounts = append(x.Accounts, a)
		return n, nil
	})
}

type WithdrawRequest struct {
	AccountNumber int32 `protobuf:"varint,1,opt,name=account_number,proto3" json:"account_number,omitempty" validate:"gt=0"`
	Amount        int64 `protobuf:"varint,2,opt,name=amount,proto3" json:"amount,omitempty" validate:"gt=0"`
}

func (x *WithdrawRequest) GetAccountNumber() int32 {
	if x != nil {
		return x.AccountNumber
	}
	return 0
}

func (x *WithdrawRequest) GetAmount() int64 {
	if x != nil {
		return x.Amount
	}
	return 0
}

func (x *WithdrawRequest) appendWire(b []byte) []byte {
	b = appendInt32(b, 1, x.AccountNumber)
	return appendInt64(b, 2, x.Amount)
}

func (x *WithdrawRequest) consumeWire(b []byte) error {
	*x = WithdrawRequest{}
	return walkFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, error) {
		switch num {
		case 1:
			u, n, err := consumeVarint(typ, v)
			x.AccountNumber = int32(u)
			return n, err
		case 2:
			u, n, err := consumeVarint(typ, v)
			x.Amount = int64(u)
			return n, err
		}
		return 0, nil
	})
}

type Money struct {
	Amount int64 `protobuf:"varint,1,opt,name=amount,proto3" json:"amount,omitempty" validate:"gt=0"`
}

func (x *Money) GetAmount() int64 {
	if x != nil {
		return x.Amount
	}
	return 0
}

func (x *Money) appendWire(b []byte) []byte {
	return appendInt64(b, 1, x.Amount)
}

func (x *Money) consumeWire(b []byte) error {
	*x = Money{}
	return walkFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, error) {
		if num != 1 {
			return 0, nil
		}
		u, n, err := consumeVarint(typ, v)
		x.Amount = int64(u)
		return n, err
	})
}

// DepositRequest carries either the target account or an amount.
type DepositRequest struct {
	// Types that are valid to be assigned to Request:
	//
	//	*DepositRequest_AccountNumber
	//	*DepositRequest_Money
	Request isDepositRequest_Request `protobuf_oneof:"request" json:"request" validate:"-"`
}

type isDepositRequest_Request interface {
	isDepositRequest_Request()
}

type DepositRequest_AccountNumber struct {
	AccountNumber int32 `protobuf:"varint,1,opt,name=account_number,proto3,oneof" json:"account_number"`
}

type DepositRequest_Money struct {
	Money *Money `protobuf:"bytes,2,opt,name=money,proto3,oneof" json:"money"`
}

func (*DepositRequest_AccountNumber) isDepositRequest_Request() {}

func (*DepositRequest_Money) isDepositRequest_Request() {}

func (x *DepositRequest) GetRequest() isDepositRequest_Request {
	if x != nil {
		return x.Request
	}
	return nil
}

func (x *DepositRequest) GetAccountNumber() int32 {
	if r, ok := x.GetRequest().(*DepositRequest_AccountNumber); ok {
		return r.AccountNumber
	}
	return 0
}

func (x *DepositRequest) GetMoney() *Money {
	if r, ok := x.GetRequest().(*DepositRequest_Money); ok {
		return r.Money
	}
	return nil
}

func (x *DepositRequest) appendWire(b []byte) []byte {
	switch r := x.Request.(type) {
	case *DepositRequest_AccountNumber:
		// oneof members are written even when zero so presence survives the wire
		b = protowire.AppendTag(b, 1, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(int64(r.AccountNumber)))
	case *DepositRequest_Money:
		if r.Money != nil {
			b = appendMessage(b, 2, r.Money)
		}
	}
	return b
}

func (x *DepositRequest) consumeWire(b []byte) error {
	*x = DepositRequest{}
	return walkFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, error) {
		switch num {
		case 1:
			u, n, err := consumeVarint(typ, v)
			x.Request = &DepositRequest_AccountNumber{AccountNumber: int32(u)}
			return n, err
		case 2:
			raw, n, err := consumeBytes(typ, v)
			if err != nil {
				return n, err
			}
			m := new(Money)
			if err := m.consumeWire(raw); err != nil {
				return n, err
			}
			x.Request = &DepositRequest_Money{Money: m}
			return n, nil
		}
		return 0, nil
	})
}
