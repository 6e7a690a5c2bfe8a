package pb

import (
	"testing"

	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func TestCodecRegisteredUnderProtoName(t *testing.T) {
	c := encoding.GetCodecV2(Name)
	if c == nil {
		t.Fatalf("no codec registered under %q", Name)
	}
	if _, ok := c.(codec); !ok {
		t.Fatalf("registered codec is %T, want pb codec", c)
	}
}

func TestDepositOneofKeepsBranch(t *testing.T) {
	b, err := Marshal(&DepositRequest{Request: &DepositRequest_Money{Money: &Money{Amount: 30}}})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got DepositRequest
	if err := Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.GetMoney().GetAmount() != 30 {
		t.Fatalf("money = %v, want 30", got.GetMoney())
	}
	if got.GetAccountNumber() != 0 {
		t.Fatalf("account branch set unexpectedly")
	}

	// an explicit zero account number is still a present branch
	b, _ = Marshal(&DepositRequest{Request: &DepositRequest_AccountNumber{}})
	if err := Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := got.GetRequest().(*DepositRequest_AccountNumber); !ok {
		t.Fatalf("request = %T, want account number branch", got.GetRequest())
	}
}

func TestNegativeInt32RoundTrips(t *testing.T) {
	b, err := Marshal(&WithdrawRequest{AccountNumber: -3, Amount: -40})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got WithdrawRequest
	if err := Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.AccountNumber != -3 || got.Amount != -40 {
		t.Fatalf("got %+v", got)
	}
}

func TestUnknownFieldsAreSkipped(t *testing.T) {
	b, _ := Marshal(&TransferRequest{FromAccount: 1, ToAccount: 2, Amount: 5})
	b = protowire.AppendTag(b, 15, protowire.BytesType)
	b = protowire.AppendString(b, "future")
	b = protowire.AppendTag(b, 16, protowire.Fixed64Type)
	b = protowire.AppendFixed64(b, 7)

	var got TransferRequest
	if err := Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.FromAccount != 1 || got.ToAccount != 2 || got.Amount != 5 {
		t.Fatalf("got %+v", got)
	}
}

func TestWrongWireTypeFails(t *testing.T) {
	b := protowire.AppendTag(nil, 1, protowire.BytesType)
	b = protowire.AppendString(b, "x")
	var got GuessRequest
	if err := Unmarshal(b, &got); err == nil {
		t.Fatalf("expected wire type error")
	}
}

func TestTransferResponseNested(t *testing.T) {
	in := &TransferResponse{
		Status:      TransferStatus_REJECTED,
		FromAccount: &AccountBalance{AccountNumber: 1, Balance: 100},
		ToAccount:   &AccountBalance{AccountNumber: 1, Balance: 100},
	}
	b, _ := Marshal(in)
	var got TransferResponse
	if err := Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Status != TransferStatus_REJECTED || got.GetFromAccount().GetBalance() != 100 || got.GetToAccount().GetAccountNumber() != 1 {
		t.Fatalf("got %+v", &got)
	}
}

func TestProtoMessagesPassThrough(t *testing.T) {
	b, err := Marshal(wrapperspb.String("ok"))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got wrapperspb.StringValue
	if err := Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.GetValue() != "ok" {
		t.Fatalf("value = %q", got.GetValue())
	}
	if _, err := Marshal(&emptypb.Empty{}); err != nil {
		t.Fatalf("marshal empty: %v", err)
	}
	if _, err := Marshal(struct{}{}); err == nil {
		t.Fatalf("expected error for unsupported type")
	}
}
