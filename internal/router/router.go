package router

import (
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/trivia/config"
	"github.com/lshigami/trivia/internal/controller"
	"github.com/lshigami/trivia/internal/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func NewGinEngine(cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.Server.GinMode)

	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(middleware.RequestID())
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		requestID, _ := param.Keys[middleware.RequestIDKey].(string)
		log.Info().
			Str("request_id", requestID).
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.CustomRecovery(controller.Recovery))
	r.Use(middleware.Metrics())
	r.Use(cors.New(corsConfig(cfg.Server.CorsOrigins)))

	r.NoRoute(controller.NotFound)
	r.NoMethod(controller.MethodNotAllowed)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

// corsConfig allows credentials for every origin in origins, or for any origin when
// origins contains "*". Browsers reject a literal "*" together with credentials, so
// the matching origin is echoed back instead.
func corsConfig(origins []string) cors.Config {
	allowAll := len(origins) == 0 || slices.Contains(origins, "*")
	return cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return allowAll || slices.Contains(origins, origin)
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
}

// RegisterRoutes mounts the trivia API at the root, the paths the game client expects.
func RegisterRoutes(
	router *gin.Engine,
	categoryCtrl *controller.CategoryController,
	questionCtrl *controller.QuestionController,
	quizCtrl *controller.QuizController,
	healthCtrl *controller.HealthController,
) {
	router.GET("/health", healthCtrl.Health)

	categories := router.Group("/categories")
	{
		categories.GET("", categoryCtrl.GetCategories)
		categories.GET("/:id/questions", categoryCtrl.GetCategoryQuestions)
	}

	questions := router.Group("/questions")
	{
		questions.GET("", questionCtrl.GetQuestions)
		questions.POST("", questionCtrl.CreateQuestion)
		questions.POST("/search", questionCtrl.SearchQuestions)
		questions.DELETE("/:id", questionCtrl.DeleteQuestion)
	}

	router.POST("/quizzes", quizCtrl.PlayQuiz)
}
