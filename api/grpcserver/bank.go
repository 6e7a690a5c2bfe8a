package grpcserver

import (
	"context"
	"errors"
	"io"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"

	"bankstream/api/gate"
	"bankstream/api/pb"
	"bankstream/domain/ledger"
	"bankstream/service"
)

// BankServer adapts the bank's balance, withdraw and deposit calls to gRPC.
type BankServer struct {
	pb.UnimplementedBankServiceServer
	bank *service.Bank
	log  *zap.Logger
}

func NewBankServer(bank *service.Bank, log *zap.Logger) *BankServer {
	return &BankServer{bank: bank, log: log}
}

// -------------------- Queries --------------------

func (s *BankServer) GetAccountBalance(
	ctx context.Context,
	req *pb.BalanceCheckRequest,
) (*pb.AccountBalance, error) {
	return toAccountBalance(s.bank.Balance(req.GetAccountNumber())), nil
}

func (s *BankServer) GetAllAccounts(
	ctx context.Context,
	_ *emptypb.Empty,
) (*pb.AllAccountsResponse, error) {
	accounts := s.bank.Accounts()

	resp := &pb.AllAccountsResponse{
		Accounts: make([]*pb.AccountBalance, 0, len(accounts)),
	}
	for _, a := range accounts {
		resp.Accounts = append(resp.Accounts, toAccountBalance(a))
	}
	return resp, nil
}

// -------------------- Streams --------------------

func (s *BankServer) Withdraw(
	req *pb.WithdrawRequest,
	stream grpc.ServerStreamingServer[pb.Money],
) error {
	ctx := stream.Context()
	sess := s.bank.OpenWithdraw(ctx, identity(ctx), req.GetAccountNumber(), req.GetAmount())

	err := sess.Run(func(amount int64) error {
		return stream.Send(&pb.Money{Amount: amount})
	})
	sess.Close(err)
	return toStatus(s.log, err)
}

func (s *BankServer) Deposit(
	stream grpc.ClientStreamingServer[pb.DepositRequest, pb.AccountBalance],
) error {
	ctx := stream.Context()
	sess := s.bank.OpenDeposit(ctx, identity(ctx))

	err := s.deposit(sess, stream)
	sess.Close(err)
	return toStatus(s.log, err)
}

func (s *BankServer) deposit(
	sess *service.DepositSession,
	stream grpc.ClientStreamingServer[pb.DepositRequest, pb.AccountBalance],
) error {
	for {
		req, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			acc, err := sess.Complete()
			if err != nil {
				return err
			}
			return stream.SendAndClose(toAccountBalance(acc))
		}
		if err != nil {
			return err
		}
		if err := sess.Next(depositStep(req)); err != nil {
			return err
		}
	}
}

// -------------------- Converters --------------------

func depositStep(req *pb.DepositRequest) service.DepositStep {
	switch r := req.GetRequest().(type) {
	case *pb.DepositRequest_AccountNumber:
		return service.AccountStep(r.AccountNumber)
	case *pb.DepositRequest_Money:
		return service.AmountStep(r.Money.GetAmount())
	default:
		return service.DepositStep{}
	}
}

func toAccountBalance(a ledger.Account) *pb.AccountBalance {
	return &pb.AccountBalance{AccountNumber: a.Number, Balance: a.Balance}
}

func identity(ctx context.Context) string {
	id, _ := gate.IdentityFromContext(ctx)
	return id
}
