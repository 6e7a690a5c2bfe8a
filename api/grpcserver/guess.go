package grpcserver

import (
	"errors"
	"io"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	"bankstream/api/pb"
	"bankstream/service"
)

// GuessServer plays one guessing game per stream and closes the stream
// once the number is found.
type GuessServer struct {
	pb.UnimplementedGuessNumberServer
	bank *service.Bank
	log  *zap.Logger
}

func NewGuessServer(bank *service.Bank, log *zap.Logger) *GuessServer {
	return &GuessServer{bank: bank, log: log}
}

func (s *GuessServer) MakeGuess(
	stream grpc.BidiStreamingServer[pb.GuessRequest, pb.GuessResponse],
) error {
	ctx := stream.Context()
	sess := s.bank.OpenGuess(ctx, identity(ctx))

	err := s.play(sess, stream)
	sess.Close(err)
	return toStatus(s.log, err)
}

func (s *GuessServer) play(
	sess *service.GuessSession,
	stream grpc.BidiStreamingServer[pb.GuessRequest, pb.GuessResponse],
) error {
	for !sess.Won() {
		req, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		reply, err := sess.Guess(req.GetGuess())
		if err != nil {
			return err
		}
		if err := stream.Send(&pb.GuessResponse{
			Attempt: reply.Attempt,
			Result:  toResult(reply.Result),
		}); err != nil {
			return err
		}
	}
	return nil
}

func toResult(r service.GuessResult) pb.Result {
	switch r {
	case service.TooLow:
		return pb.Result_TOO_LOW
	case service.TooHigh:
		return pb.Result_TOO_HIGH
	case service.Correct:
		return pb.Result_CORRECT
	default:
		return pb.Result_RESULT_UNSPECIFIED
	}
}
