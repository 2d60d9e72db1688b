package proto

import (
	"context"
	"errors"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	Auth_Register_FullMethodName = "/deckhub.Auth/Register"
	Auth_Login_FullMethodName    = "/deckhub.Auth/Login"
	Auth_Refresh_FullMethodName  = "/deckhub.Auth/Refresh"
	Auth_Logout_FullMethodName   = "/deckhub.Auth/Logout"
)

// AuthServer is the server API for the deckhub.Auth service.
type AuthServer interface {
	Register(context.Context, *RegisterRequest) (*SessionResponse, error)
	Login(context.Context, *LoginRequest) (*SessionResponse, error)
	Refresh(context.Context, *RefreshRequest) (*RefreshResponse, error)
	Logout(context.Context, *LogoutRequest) (*Empty, error)
}

// UnimplementedAuthServer answers every method with codes.Unimplemented.
type UnimplementedAuthServer struct{}

func (UnimplementedAuthServer) Register(context.Context, *RegisterRequest) (*SessionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Register not implemented")
}
func (UnimplementedAuthServer) Login(context.Context, *LoginRequest) (*SessionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Login not implemented")
}
func (UnimplementedAuthServer) Refresh(context.Context, *RefreshRequest) (*RefreshResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Refresh not implemented")
}
func (UnimplementedAuthServer) Logout(context.Context, *LogoutRequest) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method Logout not implemented")
}

// Auth_ServiceDesc is the grpc.ServiceDesc for the deckhub.Auth service.
var Auth_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "deckhub.Auth",
	HandlerType: (*AuthServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Register", Handler: unaryHandler(Auth_Register_FullMethodName, AuthServer.Register)},
		{MethodName: "Login", Handler: unaryHandler(Auth_Login_FullMethodName, AuthServer.Login)},
		{MethodName: "Refresh", Handler: unaryHandler(Auth_Refresh_FullMethodName, AuthServer.Refresh)},
		{MethodName: "Logout", Handler: unaryHandler(Auth_Logout_FullMethodName, AuthServer.Logout)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "deckhub/auth",
}

// RegisterAuthServer registers srv on s.
func RegisterAuthServer(s grpc.ServiceRegistrar, srv AuthServer) {
	if srv == nil {
		panic(errors.New("proto: nil AuthServer"))
	}
	s.RegisterService(&Auth_ServiceDesc, srv)
}

// AuthClient is the client API for the deckhub.Auth service.
type AuthClient struct {
	cc grpc.ClientConnInterface
}

func NewAuthClient(cc grpc.ClientConnInterface) *AuthClient {
	return &AuthClient{cc: cc}
}

func (c *AuthClient) Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*SessionResponse, error) {
	return invoke[SessionResponse](ctx, c.cc, Auth_Register_FullMethodName, in, opts)
}

func (c *AuthClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*SessionResponse, error) {
	return invoke[SessionResponse](ctx, c.cc, Auth_Login_FullMethodName, in, opts)
}

func (c *AuthClient) Refresh(ctx context.Context, in *RefreshRequest, opts ...grpc.CallOption) (*RefreshResponse, error) {
	return invoke[RefreshResponse](ctx, c.cc, Auth_Refresh_FullMethodName, in, opts)
}

func (c *AuthClient) Logout(ctx context.Context, in *LogoutRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, Auth_Logout_FullMethodName, in, opts)
}
