package http

import (
	"github.com/PulchraScientia/BDAstudio-demo2/internal/appcontext"
	"github.com/PulchraScientia/BDAstudio-demo2/internal/http/middleware"
	"github.com/gin-gonic/gin"
)

type APIService struct {
	engine  *gin.Engine
	context *appcontext.Context
}

func NewHTTPService(ctx *appcontext.Context) *APIService {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.CORSMiddleware())

	service := &APIService{
		engine:  engine,
		context: ctx,
	}
	service.setupRoutes()
	return service
}

func (h *APIService) Engine() *gin.Engine {
	return h.engine
}

func (h *APIService) setupRoutes() {
	v1 := h.engine.Group("/api/v1")
	v1.Use(middleware.SessionMiddleware(h.context))

	h.setupSessionRoutes(v1)
	h.setupWorkspaceRoutes(v1)
	h.setupCatalogRoutes(v1)
	h.setupDatasetRoutes(v1)
	h.setupMaterialRoutes(v1)
	h.setupExperimentRoutes(v1)
	h.setupAssistantRoutes(v1)
	h.setupChatRoutes(v1)
	h.setupScreenRoutes(v1)
}

func (h *APIService) setupSessionRoutes(group *gin.RouterGroup) {
	sessions := group.Group("/session")

	sessions.GET("/me", GetSessionInfo(h.context))
	sessions.GET("/dashboard", GetDashboard(h.context))
	sessions.POST("/reset", ResetSession(h.context))
	sessions.POST("/demo", SeedDemoData(h.context))
}

func (h *APIService) setupWorkspaceRoutes(group *gin.RouterGroup) {
	workspaces := group.Group("/workspaces")

	workspaces.GET("/", GetWorkspaces(h.context))
	workspaces.POST("/", CreateWorkspace(h.context))
	workspaces.POST("/:workspaceID/select", SelectWorkspace(h.context))
	workspaces.DELETE("/:workspaceID", DeleteWorkspace(h.context))
}

func (h *APIService) setupCatalogRoutes(group *gin.RouterGroup) {
	catalog := group.Group("/catalog")

	catalog.GET("/projects", GetCatalogProjects(h.context))
	catalog.GET("/projects/:project/datasets", GetCatalogDatasets(h.context))
	catalog.GET("/projects/:project/datasets/:dataset/tables", GetCatalogTables(h.context))
}

func (h *APIService) setupDatasetRoutes(group *gin.RouterGroup) {
	datasets := group.Group("/datasets")

	datasets.GET("/", GetDatasets(h.context))
	datasets.POST("/", SaveDataset(h.context))
	datasets.POST("/:datasetID/select", SelectDataset(h.context))
	datasets.GET("/:datasetID/schema", GetTableSchema(h.context))
	datasets.DELETE("/:datasetID", DeleteDataset(h.context))
}

func (h *APIService) setupMaterialRoutes(group *gin.RouterGroup) {
	materials := group.Group("/materials")

	materials.GET("/", GetMaterials(h.context))
	materials.POST("/", CreateMaterial(h.context))
	materials.GET("/:materialID", GetMaterial(h.context))
	materials.PUT("/:materialID", UpdateMaterial(h.context))
	materials.POST("/:materialID/select", SelectMaterial(h.context))
	materials.DELETE("/:materialID", DeleteMaterial(h.context))
}

func (h *APIService) setupExperimentRoutes(group *gin.RouterGroup) {
	experiments := group.Group("/experiments")

	experiments.GET("/", GetExperiments(h.context))
	experiments.POST("/", CreateExperiment(h.context))
	experiments.GET("/:experimentID", GetExperiment(h.context))
	experiments.POST("/:experimentID/retry", RetryExperiment(h.context))
	experiments.GET("/:experimentID/results/:index/diff", GetResultDiff(h.context))
	experiments.POST("/:experimentID/deploy", DeployAssistant(h.context))
}

func (h *APIService) setupAssistantRoutes(group *gin.RouterGroup) {
	assistants := group.Group("/assistants")

	assistants.GET("/", GetAssistants(h.context))
	assistants.GET("/:assistantID", GetAssistant(h.context))
	assistants.POST("/:assistantID/select", SelectAssistant(h.context))
}

func (h *APIService) setupChatRoutes(group *gin.RouterGroup) {
	chat := group.Group("/chat")

	chat.GET("/messages", GetChatMessages(h.context))
	chat.POST("/messages", SendChatMessage(h.context))
	chat.DELETE("/messages", ClearChatMessages(h.context))
}

func (h *APIService) setupScreenRoutes(group *gin.RouterGroup) {
	screens := group.Group("/screens")

	screens.GET("/:screen", GetScreenState(h.context))
	screens.PUT("/:screen/tab", SetScreenTab(h.context))

	group.POST("/navigation/intent", PopNavigationIntent(h.context))
}
