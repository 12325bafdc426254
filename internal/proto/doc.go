// Package proto holds the Go bindings generated from api/marketplace.proto.
package proto

//go:generate protoc -I ../.. --go_out=../.. --go_opt=module=github.com/gerich15/TemplateHub --go-grpc_out=../.. --go-grpc_opt=module=github.com/gerich15/TemplateHub ../../api/marketplace.proto
