package grpc

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName - полное имя gRPC сервиса
const ServiceName = "calculator.v1.Calculator"

const (
	MethodRegister = "/" + ServiceName + "/Register"
	MethodLogin    = "/" + ServiceName + "/Login"
	MethodInvoke   = "/" + ServiceName + "/Invoke"
)

// Виды вызова Invoke
const (
	KindAction = "action"
	KindKey    = "key"
	KindFields = "fields"
	KindState  = "state"
	KindExport = "export"
)

// CalculatorServer - серверная часть сервиса. Все сообщения - google.protobuf.Struct.
type CalculatorServer interface {
	Register(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Login(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Invoke(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

func unaryHandler(method string, call func(CalculatorServer, context.Context, *structpb.Struct) (*structpb.Struct, error)) func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(CalculatorServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: method}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(CalculatorServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// ServiceDesc описывает сервис для grpc.Server.RegisterService
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CalculatorServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Register",
			Handler:    unaryHandler(MethodRegister, CalculatorServer.Register),
		},
		{
			MethodName: "Login",
			Handler:    unaryHandler(MethodLogin, CalculatorServer.Login),
		},
		{
			MethodName: "Invoke",
			Handler:    unaryHandler(MethodInvoke, CalculatorServer.Invoke),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "calculator/v1/calculator.proto",
}

// toValue переводит JSON-сериализуемое значение в structpb.Value
func toValue(v interface{}) (*structpb.Value, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	out := new(structpb.Value)
	if err := protojson.Unmarshal(data, out); err != nil {
		return nil, fmt.Errorf("failed to convert %T: %w", v, err)
	}
	return out, nil
}

// fromValue заполняет v из structpb.Value
func fromValue(value *structpb.Value, v interface{}) error {
	data, err := protojson.Marshal(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// stringFields читает вложенный объект {"field": "value"}
func stringFields(s *structpb.Struct) (map[string]string, error) {
	if s == nil {
		return nil, nil
	}
	out := make(map[string]string, len(s.Fields))
	for name, v := range s.Fields {
		str, ok := v.Kind.(*structpb.Value_StringValue)
		if !ok {
			return nil, fmt.Errorf("field %q must be a string", name)
		}
		out[name] = str.StringValue
	}
	return out, nil
}
