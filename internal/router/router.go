package router

import (
	"time"

	"licitasis/internal/config"
	"licitasis/internal/handler"
	"licitasis/internal/infra"
	"licitasis/internal/middleware"
	"licitasis/internal/repository"
	"licitasis/internal/service"
	"licitasis/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Infrastructure ───────────────────────────────────────────────────────
	storage := infra.NewComprovanteStorage(cfg.UploadPath)
	var cnpjClient *infra.CNPJClient
	if cfg.CNPJServiceURL != "" {
		cnpjClient = infra.NewCNPJClient(cfg.CNPJServiceURL)
	}

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	fornecedorRepo := repository.NewFornecedorRepository(db)
	produtoRepo := repository.NewProdutoRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	transportadoraRepo := repository.NewTransportadoraRepository(db)
	compraRepo := repository.NewCompraRepository(db)
	vendaRepo := repository.NewVendaRepository(db)
	empenhoRepo := repository.NewEmpenhoRepository(db)
	contaRepo := repository.NewContaPagarRepository(db)
	auditRepo := repository.NewAuditRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, auditRepo, cfg)
	fornecedorSvc := service.NewFornecedorService(fornecedorRepo, auditRepo, cnpjClient)
	produtoSvc := service.NewProdutoService(produtoRepo, fornecedorRepo, auditRepo)
	clienteSvc := service.NewClienteService(clienteRepo, auditRepo)
	transportadoraSvc := service.NewTransportadoraService(transportadoraRepo, auditRepo)
	compraSvc := service.NewCompraService(compraRepo, fornecedorRepo, produtoRepo, contaRepo, auditRepo, storage, dispatcher)
	vendaSvc := service.NewVendaService(vendaRepo, clienteRepo, produtoRepo, transportadoraRepo, auditRepo)
	empenhoSvc := service.NewEmpenhoService(empenhoRepo, clienteRepo, auditRepo)
	contaSvc := service.NewContaPagarService(contaRepo, auditRepo)
	auditSvc := service.NewAuditService(auditRepo)
	dashboardSvc := service.NewDashboardService(dashboardRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usuariosH := handler.NewUsuariosHandler(authSvc)
	fornecedoresH := handler.NewFornecedoresHandler(fornecedorSvc)
	produtosH := handler.NewProdutosHandler(produtoSvc)
	clientesH := handler.NewClientesHandler(clienteSvc)
	transportadorasH := handler.NewTransportadorasHandler(transportadoraSvc)
	comprasH := handler.NewComprasHandler(compraSvc)
	vendasH := handler.NewVendasHandler(vendaSvc)
	empenhosH := handler.NewEmpenhosHandler(empenhoSvc)
	contasH := handler.NewContasPagarHandler(contaSvc)
	auditoriaH := handler.NewAuditoriaHandler(auditSvc)
	dashboardH := handler.NewDashboardHandler(dashboardSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes. Permission levels: consulta < usuario < administrador —
	// "consulta" reads, "usuario" writes business records, "administrador"
	// manages users and destructive operations.
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	leitura := middleware.RequirePermissao(middleware.PermConsulta)
	escrita := middleware.RequirePermissao(middleware.PermUsuario)
	admin := middleware.RequirePermissao(middleware.PermAdministrador)

	v1 := r.Group("/v1", jwtMW)
	{
		v1.GET("/dashboard", leitura, dashboardH.Resumo)

		v1.GET("/fornecedores", leitura, fornecedoresH.Listar)
		v1.GET("/fornecedores/:id", leitura, fornecedoresH.Buscar)
		v1.GET("/fornecedores/cnpj/:cnpj", leitura, fornecedoresH.ConsultarCNPJ)
		v1.POST("/fornecedores", escrita, fornecedoresH.Criar)
		v1.PUT("/fornecedores/:id", escrita, fornecedoresH.Atualizar)
		v1.DELETE("/fornecedores/:id", admin, fornecedoresH.Desativar)

		v1.GET("/produtos", leitura, produtosH.Listar)
		v1.GET("/produtos/:id", leitura, produtosH.Buscar)
		v1.POST("/produtos", escrita, produtosH.Criar)
		v1.PUT("/produtos/:id", escrita, produtosH.Atualizar)
		v1.DELETE("/produtos/:id", admin, produtosH.Desativar)

		v1.GET("/clientes", leitura, clientesH.Listar)
		v1.GET("/clientes/:id", leitura, clientesH.Buscar)
		v1.POST("/clientes", escrita, clientesH.Criar)
		v1.PUT("/clientes/:id", escrita, clientesH.Atualizar)
		v1.DELETE("/clientes/:id", admin, clientesH.Remover)

		v1.GET("/transportadoras", leitura, transportadorasH.Listar)
		v1.GET("/transportadoras/:id", leitura, transportadorasH.Buscar)
		v1.POST("/transportadoras", escrita, transportadorasH.Criar)
		v1.PUT("/transportadoras/:id", escrita, transportadorasH.Atualizar)
		v1.DELETE("/transportadoras/:id", admin, transportadorasH.Desativar)

		v1.GET("/compras", leitura, comprasH.ListarCompras)
		v1.GET("/compras/:id", leitura, comprasH.BuscarCompra)
		v1.POST("/compras", escrita, comprasH.RegistrarCompra)

		v1.GET("/vendas", leitura, vendasH.ListarVendas)
		v1.GET("/vendas/:id", leitura, vendasH.BuscarVenda)
		v1.POST("/vendas", escrita, vendasH.RegistrarVenda)
		v1.POST("/vendas/:id/receber", escrita, vendasH.MarcarRecebida)

		v1.GET("/empenhos", leitura, empenhosH.Listar)
		v1.GET("/empenhos/:id", leitura, empenhosH.Buscar)
		v1.POST("/empenhos", escrita, empenhosH.Criar)
		v1.PUT("/empenhos/:id/status", escrita, empenhosH.AtualizarStatus)

		v1.GET("/contas-pagar", leitura, contasH.Listar)
		v1.POST("/contas-pagar", escrita, contasH.Criar)
		v1.POST("/contas-pagar/:id/pagar", escrita, contasH.MarcarPaga)

		v1.GET("/auditoria", admin, auditoriaH.Listar)

		usuarios := v1.Group("/usuarios", admin)
		{
			usuarios.POST("", usuariosH.Criar)
			usuarios.GET("", usuariosH.Listar)
			usuarios.PUT("/:id", usuariosH.Atualizar)
			usuarios.DELETE("/:id", usuariosH.Desativar)
			usuarios.PATCH("/:id/reativar", usuariosH.Reativar)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
