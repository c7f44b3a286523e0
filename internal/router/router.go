package router

import (
	"context"
	"fmt"

	_ "github.com/PrManiezzo/marmo/docs"
	"github.com/PrManiezzo/marmo/internal/config"
	"github.com/PrManiezzo/marmo/internal/handler"
	"github.com/PrManiezzo/marmo/internal/infra"
	"github.com/PrManiezzo/marmo/internal/middleware"
	"github.com/PrManiezzo/marmo/internal/service"
	"github.com/PrManiezzo/marmo/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← Postgres/Supabase, Redis.
// The cash ledger is loaded from storage before the engine is returned.
// ctx bounds background work started here (rate limiter cleanup).
func New(ctx context.Context, cfg *config.Config, storage *infra.Storage, rdb *redis.Client, mailer *infra.Mailer) (*gin.Engine, error) {
	if cfg.Producao() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	limiter := middleware.NewRateLimiter(ctx, cfg.RateLimitPerMinute, cfg.RateLimitBurst)

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(limiter.Middleware())

	repos := storage.Repos

	// ── Services ─────────────────────────────────────────────────────────────
	dispatcher := worker.NewDispatcher(rdb)

	caixaSvc := service.NewCaixaService(repos.Transacoes, rdb)
	if err := caixaSvc.Carregar(ctx); err != nil {
		return nil, fmt.Errorf("carregar caixa: %w", err)
	}
	estoqueSvc := service.NewEstoqueService(repos.Produtos, repos.Movimentos, dispatcher)
	produtoSvc := service.NewProdutoService(repos.Produtos, rdb)
	clienteSvc := service.NewClienteService(repos.Clientes)
	servicoSvc := service.NewServicoService(repos.Servicos)
	pedidoSvc := service.NewPedidoService(repos.Pedidos, repos.Clientes, repos.Produtos, repos.Servicos)
	orcamentoSvc := service.NewOrcamentoService(repos.Orcamentos, repos.Clientes, repos.Produtos, repos.Servicos, estoqueSvc)
	dashboardSvc := service.NewDashboardService(repos.Pedidos, repos.Produtos, repos.Clientes, caixaSvc)

	// ── Handlers ─────────────────────────────────────────────────────────────
	caixaH := handler.NewCaixaHandler(caixaSvc)
	estoqueH := handler.NewEstoqueHandler(estoqueSvc)
	produtosH := handler.NewProdutosHandler(produtoSvc)
	clientesH := handler.NewClientesHandler(clienteSvc)
	servicosH := handler.NewServicosHandler(servicoSvc)
	pedidosH := handler.NewPedidosHandler(pedidoSvc)
	orcamentosH := handler.NewOrcamentosHandler(orcamentoSvc)
	dashboardH := handler.NewDashboardHandler(dashboardSvc)
	precoH := handler.NewPrecoHandler(repos.Produtos, rdb)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/health", handler.Health(storage.Ping, rdb, mailer))

	v1 := r.Group("/v1")
	{
		v1.GET("/preco/:codigo", precoH.Consultar)
		v1.GET("/dashboard", dashboardH.Resumo)

		caixa := v1.Group("/caixa")
		{
			caixa.GET("/transacoes", caixaH.Listar)
			caixa.POST("/transacoes", caixaH.Registrar)
			caixa.PUT("/transacoes/:id", caixaH.Atualizar)
			caixa.DELETE("/transacoes/:id", caixaH.Excluir)
			caixa.GET("/saldo", caixaH.Saldo)
			caixa.GET("/relatorio", caixaH.Relatorio)
			caixa.POST("/reconciliar", caixaH.Reconciliar)
		}

		estoque := v1.Group("/estoque")
		{
			estoque.POST("/:produto_id/ajuste", estoqueH.Ajustar)
			estoque.POST("/:produto_id/pecas", estoqueH.AdicionarPecas)
			estoque.GET("/movimentos", estoqueH.Movimentos)
			estoque.GET("/alertas", estoqueH.Alertas)
		}

		produtos := v1.Group("/produtos")
		{
			produtos.POST("", produtosH.Criar)
			produtos.GET("", produtosH.Listar)
			produtos.GET("/:id", produtosH.ObterPorID)
			produtos.PUT("/:id", produtosH.Atualizar)
			produtos.DELETE("/:id", produtosH.Excluir)
		}

		clientes := v1.Group("/clientes")
		{
			clientes.POST("", clientesH.Criar)
			clientes.GET("", clientesH.Listar)
			clientes.GET("/:id", clientesH.ObterPorID)
			clientes.PUT("/:id", clientesH.Atualizar)
			clientes.DELETE("/:id", clientesH.Excluir)
		}

		servicos := v1.Group("/servicos")
		{
			servicos.POST("", servicosH.Criar)
			servicos.GET("", servicosH.Listar)
			servicos.GET("/:id", servicosH.ObterPorID)
			servicos.PUT("/:id", servicosH.Atualizar)
			servicos.DELETE("/:id", servicosH.Excluir)
		}

		pedidos := v1.Group("/pedidos")
		{
			pedidos.POST("", pedidosH.Criar)
			pedidos.GET("", pedidosH.Listar)
			pedidos.GET("/:id", pedidosH.ObterPorID)
			pedidos.PUT("/:id", pedidosH.Atualizar)
			pedidos.DELETE("/:id", pedidosH.Excluir)
		}

		orcamentos := v1.Group("/orcamentos")
		{
			orcamentos.POST("", orcamentosH.Criar)
			orcamentos.GET("", orcamentosH.Listar)
			orcamentos.GET("/:id", orcamentosH.ObterPorID)
			orcamentos.PUT("/:id", orcamentosH.Atualizar)
			orcamentos.DELETE("/:id", orcamentosH.Excluir)
			orcamentos.PATCH("/:id/status", orcamentosH.AtualizarStatus)
			orcamentos.POST("/:id/gerar-estoque", orcamentosH.GerarEstoque)
		}
	}

	// Swagger UI only outside production
	if !cfg.Producao() {
		montarSwagger(r)
	}

	return r, nil
}

// montarSwagger serves the UI and doc.json from the registered docs package.
func montarSwagger(r *gin.Engine) {
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
