package handler

import "github.com/gin-gonic/gin"

// RegisterRoutes binds the resource handlers to the URL/method surface.
func RegisterRoutes(r *gin.Engine, students *StudentHandler, waste *WasteHandler, suggestions *SuggestionHandler, dashboard *DashboardHandler) {
	api := r.Group("/api")

	st := api.Group("/students")
	{
		st.POST("", students.Create)
		st.GET("", students.List)
		st.GET("/:id", students.Get)
		st.PUT("/:id", students.Update)
		st.DELETE("/:id", students.Delete)
	}

	w := api.Group("/waste")
	{
		w.POST("", waste.Create)
		w.GET("/history", waste.History)
		w.GET("", waste.ListAll)
	}

	sg := api.Group("/suggestions")
	{
		sg.POST("", suggestions.Create)
		sg.GET("", suggestions.List)
	}

	api.GET("/dashboard/summary", dashboard.Summary)
}
