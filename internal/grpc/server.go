package grpc

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"utility-calculator/internal/auth"
	"utility-calculator/internal/calculator"
	"utility-calculator/internal/db"
	"utility-calculator/internal/logger"
)

// CalculatorService реализует CalculatorServer поверх реестра сессий
type CalculatorService struct {
	registry *calculator.Registry
}

func NewCalculatorService(registry *calculator.Registry) *CalculatorService {
	return &CalculatorService{registry: registry}
}

func credentials(req *structpb.Struct) auth.Credentials {
	return auth.Credentials{
		Login:    req.Fields["login"].GetStringValue(),
		Password: req.Fields["password"].GetStringValue(),
	}
}

// Register создает пользователя
func (s *CalculatorService) Register(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	c := credentials(req)
	logger.LogINFO("gRPC: register request for " + c.Login)

	user, err := auth.RegisterUser(c)
	switch {
	case errors.Is(err, auth.ErrEmptyCredentials):
		return nil, status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, db.ErrUserAlreadyExists):
		return nil, status.Error(codes.AlreadyExists, "user with this login already exists")
	case err != nil:
		logger.LogERROR("gRPC: failed to create user: " + err.Error())
		return nil, status.Error(codes.Internal, "failed to create user")
	}

	return structpb.NewStruct(map[string]interface{}{
		"id":    float64(user.ID),
		"login": user.Login,
	})
}

// Login проверяет учетные данные и возвращает токен
func (s *CalculatorService) Login(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	token, err := auth.LoginUser(credentials(req))
	if err != nil {
		if errors.Is(err, db.ErrUserNotFound) || errors.Is(err, db.ErrInvalidCredentials) {
			return nil, status.Error(codes.Unauthenticated, "invalid login or password")
		}
		logger.LogERROR("gRPC: authentication failed: " + err.Error())
		return nil, status.Error(codes.Internal, "authentication failed")
	}
	return structpb.NewStruct(map[string]interface{}{"token": token})
}

// Invoke выполняет действие над сессией пользователя.
// Ошибки операций возвращаются в ответе вместе с состоянием, а не как ошибки gRPC.
func (s *CalculatorService) Invoke(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	userID, err := auth.RequireAuth(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, err.Error())
	}

	kind := req.Fields["kind"].GetStringValue()
	name := req.Fields["name"].GetStringValue()
	fields, err := stringFields(req.Fields["fields"].GetStructValue())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	switch kind {
	case KindState, KindFields, KindKey, KindAction, KindExport:
	default:
		return nil, status.Error(codes.InvalidArgument, "unknown invoke kind: "+kind)
	}
	if kind == KindAction && !calculator.KnownAction(name) {
		return nil, status.Error(codes.NotFound, "unknown action: "+name)
	}
	if kind == KindExport && name != "json" && name != "xlsx" {
		return nil, status.Error(codes.InvalidArgument, "unknown export format: "+name)
	}

	var state calculator.State
	var export map[string]interface{}
	err = s.registry.With(userID, func(sess *calculator.Session) error {
		defer func() { state = sess.State() }()

		switch kind {
		case KindFields:
			return sess.SetFields(fields)
		case KindKey:
			return sess.Press(name)
		case KindAction:
			if err := sess.SetFields(fields); err != nil {
				return err
			}
			return sess.Do(calculator.Action(name))
		case KindExport:
			var data []byte
			var file string
			var err error
			if name == "xlsx" {
				data, file, err = sess.Log().ExportXLSX()
			} else {
				data, file, err = sess.Log().ExportJSON()
			}
			if err != nil {
				return err
			}
			export = map[string]interface{}{
				"name": file,
				"data": base64.StdEncoding.EncodeToString(data),
			}
		}
		return nil
	})

	opErr := calculator.FailureFrom(err)
	switch {
	case err == nil, opErr != nil:
	case errors.Is(err, calculator.ErrUnknownField):
		return nil, status.Error(codes.InvalidArgument, err.Error())
	default:
		logger.LogERROR(fmt.Sprintf("gRPC: invoke %s/%s failed for user %d: %v", kind, name, userID, err))
		return nil, status.Error(codes.Internal, err.Error())
	}

	resp := &structpb.Struct{Fields: map[string]*structpb.Value{}}
	if resp.Fields["state"], err = toValue(state); err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	if opErr != nil {
		if resp.Fields["error"], err = toValue(opErr); err != nil {
			return nil, status.Error(codes.Internal, err.Error())
		}
	}
	if export != nil {
		if resp.Fields["export"], err = structpb.NewValue(export); err != nil {
			return nil, status.Error(codes.Internal, err.Error())
		}
	}
	return resp, nil
}

// AuthInterceptor проверяет JWT из метаданных authorization.
// Register и Login доступны без токена.
func AuthInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	if info.FullMethod == MethodRegister || info.FullMethod == MethodLogin {
		return handler(ctx, req)
	}

	var header string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get("authorization"); len(values) > 0 {
			header = values[0]
		}
	}

	claims, err := auth.Authenticate(header)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, err.Error())
	}

	return handler(auth.WithClaims(ctx, claims), req)
}

// NewServer создает gRPC сервер с зарегистрированным сервисом
func NewServer(service *CalculatorService) *grpc.Server {
	s := grpc.NewServer(grpc.UnaryInterceptor(AuthInterceptor))
	s.RegisterService(&ServiceDesc, service)
	return s
}

// StartGRPCServer запускает gRPC сервер на указанном адресе и возвращает экземпляр сервера
func StartGRPCServer(address string, service *CalculatorService) (*grpc.Server, error) {
	lis, err := net.Listen("tcp", address)
	if err != nil {
		return nil, err
	}

	s := NewServer(service)
	logger.LogINFO("gRPC server listening on " + address)

	go func() {
		if err := s.Serve(lis); err != nil && err != grpc.ErrServerStopped {
			logger.ERROR.Fatalf("gRPC server failed: %v", err)
		}
	}()

	return s, nil
}
