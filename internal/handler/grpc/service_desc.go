package grpc

import (
	"context"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-notes-keeper/models"
)

// ServiceDesc returns the notes.v1.Bridge service description. Register it
// together with h:
//
//	srv.RegisterService(h.ServiceDesc(), h)
func (h *Handler) ServiceDesc() *grpc.ServiceDesc {
	return &bridgeServiceDesc
}

var bridgeServiceDesc = grpc.ServiceDesc{
	ServiceName: models.BridgeServiceName,
	HandlerType: (*BridgeServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: models.BridgeGetNotesMethod,
			Handler:    getNotesHandler,
		},
		{
			MethodName: models.BridgeSaveNotesMethod,
			Handler:    saveNotesHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "notes/v1/bridge",
}

func getNotesHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(models.GetNotesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BridgeServer).GetNotes(ctx, in)
	}

	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: models.BridgeMethodPath(models.BridgeGetNotesMethod),
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(BridgeServer).GetNotes(ctx, req.(*models.GetNotesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func saveNotesHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(models.SaveNotesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BridgeServer).SaveNotes(ctx, in)
	}

	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: models.BridgeMethodPath(models.BridgeSaveNotesMethod),
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(BridgeServer).SaveNotes(ctx, req.(*models.SaveNotesRequest))
	}
	return interceptor(ctx, in, info, handler)
}
