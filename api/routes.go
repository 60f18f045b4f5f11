package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pdf_merger/config"
)

// Server holds the HTTP handler dependencies.
type Server struct {
	cfg *config.Config
	log *zap.Logger
}

func NewServer(cfg *config.Config, log *zap.Logger) *Server {
	return &Server{cfg: cfg, log: log}
}

func (s *Server) Routes(r *gin.Engine) {
	apiGroup := r.Group("/api/pdf")
	{
		apiGroup.POST("/merge", s.HandleMerge)
		apiGroup.POST("/extract", s.HandleExtract)
		apiGroup.POST("/split", s.HandleSplit)
		apiGroup.POST("/rotate", s.HandleRotate)
		apiGroup.POST("/watermark", s.HandleWatermark)
		apiGroup.POST("/compress", s.HandleCompress)
		apiGroup.POST("/info", s.HandleInfo)
	}
}
