package billing

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/grpc"
)

// Server answers provisioning requests. Real provisioning is out of scope for
// the registry; every request is acknowledged with a placeholder account.
type Server interface {
	CreateBillingAccount(ctx context.Context, request *AccountRequest) (*Account, error)
}

type server struct {
	logger *zap.SugaredLogger
}

var _ Server = &server{}

func NewServer(logger *zap.SugaredLogger) Server {
	return &server{logger: logger}
}

func (s *server) CreateBillingAccount(ctx context.Context, request *AccountRequest) (*Account, error) {
	s.logger.Infow("billing account request received",
		"patientId", request.PatientId,
		"email", request.Email,
	)
	return &Account{
		AccountId: "12345",
		Status:    StatusActive,
	}, nil
}

func RegisterServer(registrar grpc.ServiceRegistrar, srv Server) {
	registrar.RegisterService(&serviceDesc, srv)
}

func createBillingAccountHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AccountRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(Server).CreateBillingAccount(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: methodCreateBillingAccount,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(Server).CreateBillingAccount(ctx, req.(*AccountRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var serviceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*Server)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateBillingAccount",
			Handler:    createBillingAccountHandler,
		},
	},
	Streams: []grpc.StreamDesc{},
}
