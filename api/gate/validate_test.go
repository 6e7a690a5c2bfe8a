package gate

import (
	"context"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	"bankstream/api/pb"
)

func TestValidatorMessages(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name string
		msg  any
		want string
	}{
		{name: "withdraw ok", msg: &pb.WithdrawRequest{AccountNumber: 1, Amount: 30}},
		{name: "withdraw zero amount", msg: &pb.WithdrawRequest{AccountNumber: 1}, want: "validation failed: amount: gt=0"},
		{
			name: "transfer both bad",
			msg:  &pb.TransferRequest{FromAccount: -1, ToAccount: 2},
			want: "validation failed: from_account: gt=0; amount: gt=0",
		},
		{name: "guess low", msg: &pb.GuessRequest{Guess: 0}, want: "validation failed: guess: gte=1"},
		{name: "guess high", msg: &pb.GuessRequest{Guess: 101}, want: "validation failed: guess: lte=100"},
		{name: "guess edge", msg: &pb.GuessRequest{Guess: 100}},
		{name: "deposit empty", msg: &pb.DepositRequest{}, want: "validation failed: request: required"},
		{
			name: "deposit bad account",
			msg:  &pb.DepositRequest{Request: &pb.DepositRequest_AccountNumber{AccountNumber: 0}},
			want: "validation failed: account_number: gt=0",
		},
		{
			name: "deposit bad money",
			msg:  &pb.DepositRequest{Request: &pb.DepositRequest_Money{Money: &pb.Money{}}},
			want: "validation failed: amount: gt=0",
		},
		{name: "deposit money ok", msg: &pb.DepositRequest{Request: &pb.DepositRequest_Money{Money: &pb.Money{Amount: 5}}}},
		{name: "empty proto", msg: &emptypb.Empty{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.msg)
			if tt.want == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || err.Error() != tt.want {
				t.Fatalf("err = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestValidatorInspectReturnsInvalidArgument(t *testing.T) {
	err := NewValidator().Inspect(context.Background(), CallInfo{}, &pb.BalanceCheckRequest{})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("code = %v, want InvalidArgument", status.Code(err))
	}
}
