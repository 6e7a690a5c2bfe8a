package pb

import (
	"context"

	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
	emptypb "google.golang.org/protobuf/types/known/emptypb"
)

const _ = grpc.SupportPackageIsVersion9

const (
	BankService_GetAccountBalance_FullMethodName = "/bank.v1.BankService/GetAccountBalance"
	BankService_GetAllAccounts_FullMethodName    = "/bank.v1.BankService/GetAllAccounts"
	BankService_Withdraw_FullMethodName          = "/bank.v1.BankService/Withdraw"
	BankService_Deposit_FullMethodName           = "/bank.v1.BankService/Deposit"
)

// BankServiceClient is the client API for BankService.
type BankServiceClient interface {
	GetAccountBalance(ctx context.Context, in *BalanceCheckRequest, opts ...grpc.CallOption) (*AccountBalance, error)
	GetAllAccounts(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*AllAccountsResponse, error)
	Withdraw(ctx context.Context, in *WithdrawRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[Money], error)
	Deposit(ctx context.Context, opts ...grpc.CallOption) (grpc.ClientStreamingClient[DepositRequest, AccountBalance], error)
}

type bankServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewBankServiceClient(cc grpc.ClientConnInterface) BankServiceClient {
	return &bankServiceClient{cc}
}

func (c *bankServiceClient) GetAccountBalance(ctx context.Context, in *BalanceCheckRequest, opts ...grpc.CallOption) (*AccountBalance, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AccountBalance)
	err := c.cc.Invoke(ctx, BankService_GetAccountBalance_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *bankServiceClient) GetAllAccounts(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*AllAccountsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AllAccountsResponse)
	err := c.cc.Invoke(ctx, BankService_GetAllAccounts_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *bankServiceClient) Withdraw(ctx context.Context, in *WithdrawRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[Money], error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	stream, err := c.cc.NewStream(ctx, &BankService_ServiceDesc.Streams[0], BankService_Withdraw_FullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[WithdrawRequest, Money]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

func (c *bankServiceClient) Deposit(ctx context.Context, opts ...grpc.CallOption) (grpc.ClientStreamingClient[DepositRequest, AccountBalance], error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	stream, err := c.cc.NewStream(ctx, &BankService_ServiceDesc.Streams[1], BankService_Deposit_FullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[DepositRequest, AccountBalance]{ClientStream: stream}
	return x, nil
}

// BankServiceServer is the server API for BankService.
type BankServiceServer interface {
	GetAccountBalance(context.Context, *BalanceCheckRequest) (*AccountBalance, error)
	GetAllAccounts(context.Context, *emptypb.Empty) (*AllAccountsResponse, error)
	Withdraw(*WithdrawRequest, grpc.ServerStreamingServer[Money]) error
	Deposit(grpc.ClientStreamingServer[DepositRequest, AccountBalance]) error
	mustEmbedUnimplementedBankServiceServer()
}

// UnimplementedBankServiceServer must be embedded by implementations.
type UnimplementedBankServiceServer struct{}

func (UnimplementedBankServiceServer) GetAccountBalance(context.Context, *BalanceCheckRequest) (*AccountBalance, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetAccountBalance not implemented")
}
func (UnimplementedBankServiceServer) GetAllAccounts(context.Context, *emptypb.Empty) (*AllAccountsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetAllAccounts not implemented")
}
func (UnimplementedBankServiceServer) Withdraw(*WithdrawRequest, grpc.ServerStreamingServer[Money]) error {
	return status.Errorf(codes.Unimplemented, "method Withdraw not implemented")
}
func (UnimplementedBankServiceServer) Deposit(grpc.ClientStreamingServer[DepositRequest, AccountBalance]) error {
	return status.Errorf(codes.Unimplemented, "method Deposit not implemented")
}
func (UnimplementedBankServiceServer) mustEmbedUnimplementedBankServiceServer() {}

func RegisterBankServiceServer(s grpc.ServiceRegistrar, srv BankServiceServer) {
	s.RegisterService(&BankService_ServiceDesc, srv)
}

func _BankService_GetAccountBalance_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(BalanceCheckRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BankServiceServer).GetAccountBalance(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BankService_GetAccountBalance_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BankServiceServer).GetAccountBalance(ctx, req.(*BalanceCheckRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BankService_GetAllAccounts_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BankServiceServer).GetAllAccounts(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BankService_GetAllAccounts_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BankServiceServer).GetAllAccounts(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _BankService_Withdraw_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(WithdrawRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(BankServiceServer).Withdraw(m, &grpc.GenericServerStream[WithdrawRequest, Money]{ServerStream: stream})
}

func _BankService_Deposit_Handler(srv interface{}, stream grpc.ServerStream) error {
	return srv.(BankServiceServer).Deposit(&grpc.GenericServerStream[DepositRequest, AccountBalance]{ServerStream: stream})
}

// BankService_ServiceDesc is the grpc.ServiceDesc for BankService.
var BankService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "bank.v1.BankService",
	HandlerType: (*BankServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetAccountBalance",
			Handler:    _BankService_GetAccountBalance_Handler,
		},
		{
			MethodName: "GetAllAccounts",
			Handler:    _BankService_GetAllAccounts_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "Withdraw",
			Handler:       _BankService_Withdraw_Handler,
			ServerStreams: true,
		},
		{
			StreamName:    "Deposit",
			Handler:       _BankService_Deposit_Handler,
			ClientStreams: true,
		},
	},
	Metadata: "bank/v1/bank.proto",
}
