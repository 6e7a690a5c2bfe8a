package grpcserver

import (
	"errors"
	"io"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	"bankstream/api/pb"
	"bankstream/service"
)

// TransferServer answers every transfer request on the stream in order.
type TransferServer struct {
	pb.UnimplementedTransferServiceServer
	bank *service.Bank
	log  *zap.Logger
}

func NewTransferServer(bank *service.Bank, log *zap.Logger) *TransferServer {
	return &TransferServer{bank: bank, log: log}
}

func (s *TransferServer) Transfer(
	stream grpc.BidiStreamingServer[pb.TransferRequest, pb.TransferResponse],
) error {
	ctx := stream.Context()
	sess := s.bank.OpenTransfer(ctx, identity(ctx))

	err := s.serve(sess, stream)
	sess.Close(err)
	return toStatus(s.log, err)
}

func (s *TransferServer) serve(
	sess *service.TransferSession,
	stream grpc.BidiStreamingServer[pb.TransferRequest, pb.TransferResponse],
) error {
	for {
		req, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		out, err := sess.Apply(req.GetFromAccount(), req.GetToAccount(), req.GetAmount())
		if err != nil {
			return err
		}
		if err := stream.Send(toTransferResponse(out)); err != nil {
			return err
		}
	}
}

func toTransferResponse(out service.TransferOutcome) *pb.TransferResponse {
	status := pb.TransferStatus_COMPLETED
	if out.Status == service.TransferRejected {
		status = pb.TransferStatus_REJECTED
	}
	return &pb.TransferResponse{
		Status:      status,
		FromAccount: toAccountBalance(out.From),
		ToAccount:   toAccountBalance(out.To),
	}
}
