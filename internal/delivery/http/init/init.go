package http_init

import (
	"log"

	"github.com/gin-gonic/gin"
)

type Controller interface {
	RegisterRoutes(router *gin.RouterGroup)
}

type ControllerPool struct {
	pool   []Controller
	rg     *gin.RouterGroup
	engine *gin.Engine
}

func NewControllerPool(templatesGlob string, middleware ...gin.HandlerFunc) *ControllerPool {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware...)
	engine.LoadHTMLGlob(templatesGlob)

	rg := engine.Group("/")
	return &ControllerPool{
		pool:   make([]Controller, 0, 10),
		rg:     rg,
		engine: engine,
	}
}

func (pool *ControllerPool) Register() {
	for _, c := range pool.pool {
		c.RegisterRoutes(pool.rg)
	}
}

func (pool *ControllerPool) RunAll(port string) {
	if err := pool.engine.Run(":" + port); err != nil {
		log.Fatalf("failed to run HTTP server: %v", err)
	}
}

func (pool *ControllerPool) Add(c Controller) {
	pool.pool = append(pool.pool, c)
}
