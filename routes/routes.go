package routes

import (
	"go-wastewatch/alerts"
	"go-wastewatch/catalog"
	"go-wastewatch/handlers"
	"go-wastewatch/workflow"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
)

func SetupRouter(
	cat *catalog.Catalog,
	firestoreClient *firestore.Client,
	starter workflow.Starter,
	dispatcher *alerts.Dispatcher,
) *gin.Engine {
	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Hello, welcome to WasteWatch!",
		})
	})

	// api routes
	api := r.Group("/api/wastewatch")
	{
		api.POST("/incidents", func(c *gin.Context) {
			handlers.ReportIncident(c, cat, firestoreClient, starter, dispatcher)
		})
		api.GET("/incidents/:id", func(c *gin.Context) {
			handlers.GetIncident(c, firestoreClient)
		})
		api.POST("/incidents/:id/resolve", func(c *gin.Context) {
			handlers.ResolveIncident(c, firestoreClient)
		})
		api.POST("/evaluate", func(c *gin.Context) {
			handlers.EvaluateIncident(c, cat)
		})
		api.GET("/simulate", func(c *gin.Context) {
			handlers.SimulateIncident(c, cat)
		})
	}

	return r
}
