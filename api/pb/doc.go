// Package pb defines the bank.v1 wire contract: message types, service
// descriptors and client/server stubs for the services described in
// api/proto/bank/v1/bank.proto.
//
// Messages are encoded in protobuf wire format by a codec registered under
// the default "proto" name, so any protobuf client can talk to the server.
// Values that implement proto.Message (health checks, emptypb.Empty) are
// delegated to the protobuf runtime unchanged.
package pb
