package grpc

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/types/known/structpb"

	"utility-calculator/internal/calculator"
	"utility-calculator/internal/logger"
)

// Reply - ответ Invoke: состояние сессии и ошибка операции, если она была
type Reply struct {
	State calculator.State
	Error *calculator.Failure
}

// Export - выгруженный журнал ошибок
type Export struct {
	Name string
	Data []byte
}

// CalculatorClient представляет gRPC клиент для удаленной сессии калькулятора
type CalculatorClient struct {
	conn    *grpc.ClientConn
	token   string
	timeout time.Duration
}

// NewCalculatorClient создает клиент. Дополнительные опции используются в тестах (bufconn).
func NewCalculatorClient(address string, timeout time.Duration, opts ...grpc.DialOption) (*CalculatorClient, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.Dial(address, opts...)
	if err != nil {
		return nil, err
	}

	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &CalculatorClient{conn: conn, timeout: timeout}, nil
}

// Close закрывает соединение с сервером
func (c *CalculatorClient) Close() error {
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

func (c *CalculatorClient) SetToken(token string) { c.token = token }
func (c *CalculatorClient) Token() string { return c.token }

func (c *CalculatorClient) call(method string, req *structpb.Struct) (*structpb.Struct, error) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	if c.token != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+c.token)
	}

	resp := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, method, req, resp); err != nil {
		logger.LogERROR(fmt.Sprintf("gRPC call %s failed: %v", method, err))
		return nil, err
	}
	return resp, nil
}

func credentialsRequest(login, password string) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]interface{}{"login": login, "password": password})
}

// Register создает пользователя на сервере
func (c *CalculatorClient) Register(login, password string) error {
	req, err := credentialsRequest(login, password)
	if err != nil {
		return err
	}
	_, err = c.call(MethodRegister, req)
	return err
}

// Login получает токен и сохраняет его для следующих вызовов
func (c *CalculatorClient) Login(login, password string) error {
	req, err := credentialsRequest(login, password)
	if err != nil {
		return err
	}
	resp, err := c.call(MethodLogin, req)
	if err != nil {
		return err
	}
	c.token = resp.Fields["token"].GetStringValue()
	return nil
}

func (c *CalculatorClient) invoke(kind, name string, fields map[string]string) (*structpb.Struct, error) {
	values := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		values[k] = v
	}
	req, err := structpb.NewStruct(map[string]interface{}{
		"kind":   kind,
		"name":   name,
		"fields": values,
	})
	if err != nil {
		return nil, err
	}
	return c.call(MethodInvoke, req)
}

func (c *CalculatorClient) reply(kind, name string, fields map[string]string) (Reply, error) {
	resp, err := c.invoke(kind, name, fields)
	if err != nil {
		return Reply{}, err
	}

	var r Reply
	if err := fromValue(resp.Fields["state"], &r.State); err != nil {
		return Reply{}, fmt.Errorf("failed to decode state: %w", err)
	}
	if v, ok := resp.Fields["error"]; ok {
		r.Error = new(calculator.Failure)
		if err := fromValue(v, r.Error); err != nil {
			return Reply{}, fmt.Errorf("failed to decode error: %w", err)
		}
	}
	return r, nil
}

// Do выполняет действие, предварительно записав поля
func (c *CalculatorClient) Do(action calculator.Action, fields map[string]string) (Reply, error) {
	return c.reply(KindAction, string(action), fields)
}

// Press отправляет нажатие клавиши
func (c *CalculatorClient) Press(key string) (Reply, error) {
	return c.reply(KindKey, key, nil)
}

// SetFields записывает поля сессии
func (c *CalculatorClient) SetFields(fields map[string]string) (Reply, error) {
	return c.reply(KindFields, "", fields)
}

// State возвращает текущее состояние сессии
func (c *CalculatorClient) State() (Reply, error) {
	return c.reply(KindState, "", nil)
}

// Export выгружает журнал ошибок в формате json или xlsx
func (c *CalculatorClient) Export(format string) (Export, error) {
	resp, err := c.invoke(KindExport, format, nil)
	if err != nil {
		return Export{}, err
	}

	export := resp.Fields["export"].GetStructValue()
	if export == nil {
		return Export{}, fmt.Errorf("response has no export")
	}
	data, err := base64.StdEncoding.DecodeString(export.Fields["data"].GetStringValue())
	if err != nil {
		return Export{}, fmt.Errorf("failed to decode export: %w", err)
	}
	return Export{Name: export.Fields["name"].GetStringValue(), Data: data}, nil
}
