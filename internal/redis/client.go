package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"restaurant_pos/internal/models"
)

type Client struct {
	rdb *redis.Client
}

// SessionData is what the auth middleware needs on every request. The
// identity token is kept so logout can revoke the upstream session.
type SessionData struct {
	UserID        string    `json:"user_id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	IdentityToken string    `json:"identity_token"`
	CreatedAt     time.Time `json:"created_at"`
}

func Initialize(redisURL string) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// Session management
func (c *Client) SetSession(token string, data *SessionData, ttl time.Duration) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal session data: %w", err)
	}

	return c.rdb.Set(ctx, "session:"+token, jsonData, ttl).Err()
}

func (c *Client) GetSession(token string) (*SessionData, error) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, "session:"+token).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("session not found")
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session SessionData
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session data: %w", err)
	}

	return &session, nil
}

func (c *Client) DeleteSession(token string) error {
	ctx := context.Background()
	return c.rdb.Del(ctx, "session:"+token).Err()
}

// Catalog caching. The store stays authoritative; these are read-through
// entries with a short TTL.
func (c *Client) SetCategoryList(categories []models.Category, ttl time.Duration) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(categories)
	if err != nil {
		return fmt.Errorf("failed to marshal category list: %w", err)
	}
	return c.rdb.Set(ctx, "catalog:categories", jsonData, ttl).Err()
}

func (c *Client) GetCategoryList() ([]models.Category, error) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, "catalog:categories").Result()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("category list not cached")
		}
		return nil, fmt.Errorf("failed to get category list: %w", err)
	}

	var categories []models.Category
	if err := json.Unmarshal([]byte(val), &categories); err != nil {
		return nil, fmt.Errorf("failed to unmarshal category list: %w", err)
	}
	return categories, nil
}

func (c *Client) SetProductList(products []models.Product, ttl time.Duration) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("failed to marshal product list: %w", err)
	}
	return c.rdb.Set(ctx, "catalog:products", jsonData, ttl).Err()
}

func (c *Client) GetProductList() ([]models.Product, error) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, "catalog:products").Result()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("product list not cached")
		}
		return nil, fmt.Errorf("failed to get product list: %w", err)
	}

	var products []models.Product
	if err := json.Unmarshal([]byte(val), &products); err != nil {
		return nil, fmt.Errorf("failed to unmarshal product list: %w", err)
	}
	return products, nil
}

// Close Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
