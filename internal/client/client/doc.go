// Package client contains the client-side API for the car registry.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface): Ping,
//     owner and renter registration, RentCar, the read-only listings and
//     ExportSnapshot.
//  2. A concrete gRPC implementation (see GRPCClient) that manages a
//     connection, injects the access token via an interceptor, applies a
//     per-request timeout and maps gRPC status codes to sentinel errors.
//
// # Error Handling
//
// Transport conditions are exposed as sentinel errors that callers can match
// with errors.Is: ErrUnavailable, ErrUnauthorized, ErrForbidden, ErrNotFound.
// Registry rule violations (InvalidArgument, FailedPrecondition) are returned
// as plain errors carrying the server's message, e.g.
// "Debes pagar 1 NEAR para registrarte.".
//
// All operations accept context.Context and honor cancellation.
package client
