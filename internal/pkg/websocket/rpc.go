// Package websocket exposes the student and teacher operations over a
// WebSocket JSON-RPC endpoint. Each text frame carries one request
// ({"id", "method", "params"}) and receives one response frame: either
// {"id", "result"} or {"id", "error": {"message"}}.
package websocket

import "encoding/json"

// Request is an incoming RPC message.
type Request struct {
	ID     json.RawMessage `json:"id"`
	Method string          `json:"method"`
	Params json.RawMessage `json:"params,omitempty"`
}

// Response is an outgoing RPC message. Exactly one of Result and Error is set.
type Response struct {
	ID     json.RawMessage `json:"id"`
	Result interface{}     `json:"result,omitempty"`
	Error  *RPCError       `json:"error,omitempty"`
}

// RPCError carries the failure message of an RPC call.
type RPCError struct {
	Message string `json:"message"`
}

func rpcResult(id json.RawMessage, result interface{}) Response {
	return Response{ID: id, Result: result}
}

func rpcError(id json.RawMessage, message string) Response {
	return Response{ID: id, Error: &RPCError{Message: message}}
}
