package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

const bagCount = 40

var orderTypes = []string{"BORDADO", "ESTAMPADO", "ESTAMPADO_Y_BORDADO", "OTROS"}

var nextStatus = map[string]string{
	"PENDIENTE":     "en-produccion",
	"EN_PRODUCCION": "en-proceso",
	"EN_PROCESO":    "listo-entrega",
}

type client struct {
	baseURL string
	token   string
	http    *http.Client
}

func (c *client) do(ctx context.Context, method, path string, in, out any) (int, error) {
	var body bytes.Buffer
	if in != nil {
		if err := json.NewEncoder(&body).Encode(in); err != nil {
			return 0, err
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &body)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if out != nil && resp.StatusCode < 300 {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, err
		}
	}
	return resp.StatusCode, nil
}

type bag struct {
	ID string `json:"id"`
}

type worker struct {
	ID string `json:"id"`
}

type order struct {
	ID     string `json:"id"`
	Estado string `json:"estado"`
}

func (c *client) login(ctx context.Context, email, password string) error {
	var res struct {
		Token string `json:"token"`
	}
	status, err := c.do(ctx, http.MethodPost, "/auth/login", map[string]string{"email": email, "password": password}, &res)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("login failed with status %d", status)
	}
	c.token = res.Token
	return nil
}

func (c *client) seed(ctx context.Context) (string, error) {
	for i := 1; i <= bagCount; i++ {
		// 409 means the bag is already registered
		if _, err := c.do(ctx, http.MethodPost, "/bags", bag{ID: fmt.Sprint(i)}, nil); err != nil {
			return "", err
		}
	}

	var w worker
	status, err := c.do(ctx, http.MethodPost, "/workers", map[string]string{"nombre": "Generador"}, &w)
	if err != nil {
		return "", err
	}
	if status == http.StatusCreated {
		return w.ID, nil
	}

	var workers []worker
	if _, err := c.do(ctx, http.MethodGet, "/workers?search=Generador", nil, &workers); err != nil {
		return "", err
	}
	if len(workers) == 0 {
		return "", fmt.Errorf("no worker available, status %d", status)
	}
	return workers[0].ID, nil
}

func (c *client) createOrder(ctx context.Context, logger *slog.Logger, workerID string) error {
	var free []bag
	if _, err := c.do(ctx, http.MethodGet, "/bags?estado=DISPONIBLE", nil, &free); err != nil {
		return err
	}
	if len(free) == 0 {
		logger.Info("no free bags")
		return nil
	}

	total := rand.Intn(90) + 10
	in := map[string]any{
		"tipo":            orderTypes[rand.Intn(len(orderTypes))],
		"descripcion":     "generated order",
		"cantidadPrendas": rand.Intn(20) + 1,
		"abono":           fmt.Sprintf("%d.00", rand.Intn(total)),
		"total":           fmt.Sprintf("%d.00", total),
		"fechaEntrega":    time.Now().Add(time.Duration(rand.Intn(14)+1) * 24 * time.Hour).Format(time.RFC3339),
		"bolsaId":         free[rand.Intn(len(free))].ID,
		"trabajadorId":    workerID,
		"cliente": map[string]string{
			"nombre":   fmt.Sprintf("Cliente %d", rand.Intn(50)),
			"cedula":   fmt.Sprintf("%010d", rand.Intn(50)),
			"telefono": fmt.Sprintf("09%08d", rand.Intn(99999999)),
		},
	}

	var o order
	status, err := c.do(ctx, http.MethodPost, "/orders", in, &o)
	if err != nil {
		return err
	}
	logger.Info("order requested", slog.Int("status", status), slog.String("id", o.ID), slog.Any("bag", in["bolsaId"]))
	return nil
}

func (c *client) advanceOrder(ctx context.Context, logger *slog.Logger) error {
	var page struct {
		Data []order `json:"data"`
	}
	path := "/orders?estado=PENDIENTE&estado=EN_PRODUCCION&estado=EN_PROCESO&limit=20"
	if _, err := c.do(ctx, http.MethodGet, path, nil, &page); err != nil {
		return err
	}
	if len(page.Data) == 0 {
		return nil
	}

	o := page.Data[rand.Intn(len(page.Data))]
	target := nextStatus[o.Estado]
	if rand.Intn(10) == 0 {
		target = "entregado"
	}
	status, err := c.do(ctx, http.MethodPatch, "/orders/"+o.ID+"/status/"+target, nil, nil)
	if err != nil {
		return err
	}
	logger.Info("status change requested", slog.String("id", o.ID), slog.String("target", target), slog.Int("status", status))
	return nil
}

func every(ctx context.Context, d time.Duration, fn func() error) error {
	ticker := time.NewTicker(d)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if err := fn(); err != nil {
				return err
			}
		case <-ctx.Done():
			return nil
		}
	}
}

func env(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

func main() {
	godotenv.Load()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	c := &client{
		baseURL: env("API_URL", "http://localhost:8080"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
	if err := c.login(ctx, env("ADMIN_EMAIL", ""), env("ADMIN_PASSWORD", "")); err != nil {
		logger.Error("failed to login", slog.Any("error", err))
		os.Exit(1)
	}

	workerID, err := c.seed(ctx)
	if err != nil {
		logger.Error("failed to seed", slog.Any("error", err))
		os.Exit(1)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return every(ctx, 2*time.Second, func() error { return c.createOrder(ctx, logger, workerID) })
	})
	g.Go(func() error {
		return every(ctx, 3*time.Second, func() error { return c.advanceOrder(ctx, logger) })
	})
	if err := g.Wait(); err != nil {
		logger.Error("generator stopped", slog.Any("error", err))
		os.Exit(1)
	}
}
