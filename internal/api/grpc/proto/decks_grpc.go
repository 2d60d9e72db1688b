package proto

import (
	"context"
	"errors"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	Decks_Generate_FullMethodName = "/deckhub.Decks/Generate"
	Decks_List_FullMethodName     = "/deckhub.Decks/List"
	Decks_Get_FullMethodName      = "/deckhub.Decks/Get"
	Decks_Save_FullMethodName     = "/deckhub.Decks/Save"
	Decks_Delete_FullMethodName   = "/deckhub.Decks/Delete"
	Decks_Export_FullMethodName   = "/deckhub.Decks/Export"

	Decks_ListTemplates_FullMethodName = "/deckhub.Decks/ListTemplates"
	Decks_UseTemplate_FullMethodName   = "/deckhub.Decks/UseTemplate"
)

// DecksServer is the server API for the deckhub.Decks service.
type DecksServer interface {
	Generate(context.Context, *GenerateRequest) (*DeckResponse, error)
	List(context.Context, *ListDecksRequest) (*ListDecksResponse, error)
	Get(context.Context, *GetDeckRequest) (*DeckResponse, error)
	Save(context.Context, *SaveDeckRequest) (*DeckResponse, error)
	Delete(context.Context, *DeleteDeckRequest) (*Empty, error)
	Export(context.Context, *ExportDeckRequest) (*ExportDeckResponse, error)
	ListTemplates(context.Context, *ListTemplatesRequest) (*ListTemplatesResponse, error)
	UseTemplate(context.Context, *UseTemplateRequest) (*DeckResponse, error)
}

// UnimplementedDecksServer answers every method with codes.Unimplemented.
type UnimplementedDecksServer struct{}

func (UnimplementedDecksServer) Generate(context.Context, *GenerateRequest) (*DeckResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Generate not implemented")
}
func (UnimplementedDecksServer) List(context.Context, *ListDecksRequest) (*ListDecksResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method List not implemented")
}
func (UnimplementedDecksServer) Get(context.Context, *GetDeckRequest) (*DeckResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Get not implemented")
}
func (UnimplementedDecksServer) Save(context.Context, *SaveDeckRequest) (*DeckResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Save not implemented")
}
func (UnimplementedDecksServer) Delete(context.Context, *DeleteDeckRequest) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method Delete not implemented")
}
func (UnimplementedDecksServer) Export(context.Context, *ExportDeckRequest) (*ExportDeckResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Export not implemented")
}
func (UnimplementedDecksServer) ListTemplates(context.Context, *ListTemplatesRequest) (*ListTemplatesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListTemplates not implemented")
}
func (UnimplementedDecksServer) UseTemplate(context.Context, *UseTemplateRequest) (*DeckResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UseTemplate not implemented")
}

// Decks_ServiceDesc is the grpc.ServiceDesc for the deckhub.Decks service.
var Decks_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "deckhub.Decks",
	HandlerType: (*DecksServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Generate", Handler: unaryHandler(Decks_Generate_FullMethodName, DecksServer.Generate)},
		{MethodName: "List", Handler: unaryHandler(Decks_List_FullMethodName, DecksServer.List)},
		{MethodName: "Get", Handler: unaryHandler(Decks_Get_FullMethodName, DecksServer.Get)},
		{MethodName: "Save", Handler: unaryHandler(Decks_Save_FullMethodName, DecksServer.Save)},
		{MethodName: "Delete", Handler: unaryHandler(Decks_Delete_FullMethodName, DecksServer.Delete)},
		{MethodName: "Export", Handler: unaryHandler(Decks_Export_FullMethodName, DecksServer.Export)},
		{MethodName: "ListTemplates", Handler: unaryHandler(Decks_ListTemplates_FullMethodName, DecksServer.ListTemplates)},
		{MethodName: "UseTemplate", Handler: unaryHandler(Decks_UseTemplate_FullMethodName, DecksServer.UseTemplate)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "deckhub/decks",
}

// RegisterDecksServer registers srv on s.
func RegisterDecksServer(s grpc.ServiceRegistrar, srv DecksServer) {
	if srv == nil {
		panic(errors.New("proto: nil DecksServer"))
	}
	s.RegisterService(&Decks_ServiceDesc, srv)
}

// DecksClient is the client API for the deckhub.Decks service.
type DecksClient struct {
	cc grpc.ClientConnInterface
}

func NewDecksClient(cc grpc.ClientConnInterface) *DecksClient {
	return &DecksClient{cc: cc}
}

func (c *DecksClient) Generate(ctx context.Context, in *GenerateRequest, opts ...grpc.CallOption) (*DeckResponse, error) {
	return invoke[DeckResponse](ctx, c.cc, Decks_Generate_FullMethodName, in, opts)
}

func (c *DecksClient) List(ctx context.Context, in *ListDecksRequest, opts ...grpc.CallOption) (*ListDecksResponse, error) {
	return invoke[ListDecksResponse](ctx, c.cc, Decks_List_FullMethodName, in, opts)
}

func (c *DecksClient) Get(ctx context.Context, in *GetDeckRequest, opts ...grpc.CallOption) (*DeckResponse, error) {
	return invoke[DeckResponse](ctx, c.cc, Decks_Get_FullMethodName, in, opts)
}

func (c *DecksClient) Save(ctx context.Context, in *SaveDeckRequest, opts ...grpc.CallOption) (*DeckResponse, error) {
	return invoke[DeckResponse](ctx, c.cc, Decks_Save_FullMethodName, in, opts)
}

func (c *DecksClient) Delete(ctx context.Context, in *DeleteDeckRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, Decks_Delete_FullMethodName, in, opts)
}

func (c *DecksClient) Export(ctx context.Context, in *ExportDeckRequest, opts ...grpc.CallOption) (*ExportDeckResponse, error) {
	return invoke[ExportDeckResponse](ctx, c.cc, Decks_Export_FullMethodName, in, opts)
}

func (c *DecksClient) ListTemplates(ctx context.Context, in *ListTemplatesRequest, opts ...grpc.CallOption) (*ListTemplatesResponse, error) {
	return invoke[ListTemplatesResponse](ctx, c.cc, Decks_ListTemplates_FullMethodName, in, opts)
}

func (c *DecksClient) UseTemplate(ctx context.Context, in *UseTemplateRequest, opts ...grpc.CallOption) (*DeckResponse, error) {
	return invoke[DeckResponse](ctx, c.cc, Decks_UseTemplate_FullMethodName, in, opts)
}
