package pb

import (
	"context"

	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

const (
	GuessNumber_MakeGuess_FullMethodName = "/bank.v1.GuessNumber/MakeGuess"
)

// GuessNumberClient is the client API for GuessNumber.
type GuessNumberClient interface {
	MakeGuess(ctx context.Context, opts ...grpc.CallOption) (grpc.BidiStreamingClient[GuessRequest, GuessResponse], error)
}

type guessNumberClient struct {
	cc grpc.ClientConnInterface
}

func NewGuessNumberClient(cc grpc.ClientConnInterface) GuessNumberClient {
	return &guessNumberClient{cc}
}

func (c *guessNumberClient) MakeGuess(ctx context.Context, opts ...grpc.CallOption) (grpc.BidiStreamingClient[GuessRequest, GuessResponse], error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	stream, err := c.cc.NewStream(ctx, &GuessNumber_ServiceDesc.Streams[0], GuessNumber_MakeGuess_FullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[GuessRequest, GuessResponse]{ClientStream: stream}
	return x, nil
}

// GuessNumberServer is the server API for GuessNumber.
type GuessNumberServer interface {
	MakeGuess(grpc.BidiStreamingServer[GuessRequest, GuessResponse]) error
	mustEmbedUnimplementedGuessNumberServer()
}

// UnimplementedGuessNumberServer must be embedded by implementations.
type UnimplementedGuessNumberServer struct{}

func (UnimplementedGuessNumberServer) MakeGuess(grpc.BidiStreamingServer[GuessRequest, GuessResponse]) error {
	return status.Errorf(codes.Unimplemented, "method MakeGuess not implemented")
}
func (UnimplementedGuessNumberServer) mustEmbedUnimplementedGuessNumberServer() {}

func RegisterGuessNumberServer(s grpc.ServiceRegistrar, srv GuessNumberServer) {
	s.RegisterService(&GuessNumber_ServiceDesc, srv)
}

func _GuessNumber_MakeGuess_Handler(srv interface{}, stream grpc.ServerStream) error {
	return srv.(GuessNumberServer).MakeGuess(&grpc.GenericServerStream[GuessRequest, GuessResponse]{ServerStream: stream})
}

// GuessNumber_ServiceDesc is the grpc.ServiceDesc for GuessNumber.
var GuessNumber_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "bank.v1.GuessNumber",
	HandlerType: (*GuessNumberServer)(nil),
	Methods:     []grpc.MethodDesc{},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "MakeGuess",
			Handler:       _GuessNumber_MakeGuess_Handler,
			ServerStreams: true,
			ClientStreams: true,
		},
	},
	Metadata: "bank/v1/bank.proto",
}
