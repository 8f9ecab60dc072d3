package http

import "github.com/gin-gonic/gin"

// Register mounts every REST endpoint on r
func (h *Handlers) Register(r gin.IRouter) {
	r.GET("/", h.Root)
	r.GET("/health", h.Health)
	r.GET("/state", h.State)
	r.GET("/logs", h.Logs)

	windows := r.Group("/windows")
	{
		windows.GET("", h.ListWindows)
		windows.POST("", h.OpenWindow)
		windows.GET("/:id", h.GetWindow)
		windows.DELETE("/:id", h.CloseWindow)
		windows.POST("/:id/raise", h.RaiseWindow)
		windows.POST("/:id/minimize", h.MinimizeWindow)
		windows.POST("/:id/maximize", h.MaximizeWindow)
	}

	interactions := r.Group("/interactions")
	{
		interactions.POST("/play", h.Play)
		interactions.POST("/box", h.ToggleBox)
		interactions.POST("/key", h.Key)
		interactions.POST("/start-menu", h.StartMenu)
	}

	r.POST("/chaos", h.Chaos)
	r.POST("/zoomies", h.Zoomies)
	r.POST("/crash", h.Crash)
}
