// Package transport exposes gRPC/HTTP handlers.
package transport

import (
	"context"

	blockinsight7000v1 "github.com/goodnatureofminers/blockinsight7000-proto/pkg/blockinsight7000/v1"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ExplorerHandler implements ExplorerServiceServer.
type ExplorerHandler struct {
	blockinsight7000v1.UnimplementedExplorerServiceServer
	snapshots HeaderSnapshots
}

func NewExplorerHandler(snapshots HeaderSnapshots) blockinsight7000v1.ExplorerServiceServer {
	return &ExplorerHandler{snapshots: snapshots}
}

// Health is healthy once the header index holds a best block, described as
// "best=<hash> height=<h> @ <time>".
func (h *ExplorerHandler) Health(_ context.Context, _ *blockinsight7000v1.HealthRequest) (*blockinsight7000v1.HealthResponse, error) {
	best, ok := h.snapshots.Snapshot().Best()
	if !ok {
		return nil, status.Error(codes.Unavailable, "header index is empty")
	}
	return &blockinsight7000v1.HealthResponse{
		Status:      blockinsight7000v1.HealthStatus_HEALTH_STATUS_HEALTHY,
		Description: best.String(),
	}, nil
}
