package validation

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"forkflow/internal/domain"
	apperrors "forkflow/internal/errors"
	"forkflow/internal/tenant"

	"go.uber.org/zap"
)

// Client checks order lines against the catalog service before an order may
// be committed. One lookup per line, strictly sequential, first failure
// wins. The timeout covers the whole batch, the envelope the catalog
// integration has always promised; a very large order can therefore still
// approach the full budget even though each call returns quickly. No retries
// happen here; retry policy belongs to the caller.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	logger     *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		timeout:    timeout,
		logger:     logger,
	}
}

type menuItemResponse struct {
	ID        string `json:"id"`
	Available bool   `json:"available"`
}

// ValidateLines returns nil only if every line's item exists and is
// available for the tenant. It returns ItemRejectedError on a negative
// determination and CatalogUnavailableError when validity could not be
// determined; the two are never conflated.
func (c *Client) ValidateLines(ctx context.Context, tenantID string, lines []domain.OrderLine) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	for _, line := range lines {
		if err := c.validateItem(ctx, tenantID, line.ItemID); err != nil {
			return err
		}
	}

	c.logger.Info("all items validated",
		zap.String("tenantId", tenantID),
		zap.Int("itemCount", len(lines)))
	return nil
}

func (c *Client) validateItem(ctx context.Context, tenantID, itemID string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/menu/"+url.PathEscape(itemID), nil)
	if err != nil {
		return apperrors.NewInternalError("building catalog request", err)
	}
	req.Header.Set(tenant.Header, tenantID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.classifyTransportError(tenantID, itemID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		c.logger.Warn("item not found in catalog",
			zap.String("tenantId", tenantID),
			zap.String("itemId", itemID))
		return apperrors.NewItemRejectedError(itemID, apperrors.ReasonItemNotFound)
	}

	if resp.StatusCode != http.StatusOK {
		return apperrors.NewCatalogUnavailableError(apperrors.CauseNetwork,
			fmt.Errorf("unexpected status %d from catalog", resp.StatusCode))
	}

	var item menuItemResponse
	if err := json.NewDecoder(resp.Body).Decode(&item); err != nil {
		return apperrors.NewCatalogUnavailableError(apperrors.CauseNetwork,
			fmt.Errorf("decoding catalog response: %w", err))
	}

	if !item.Available {
		c.logger.Warn("item not available",
			zap.String("tenantId", tenantID),
			zap.String("itemId", itemID))
		return apperrors.NewItemRejectedError(itemID, apperrors.ReasonItemNotAvailable)
	}

	return nil
}

func (c *Client) classifyTransportError(tenantID, itemID string, err error) error {
	var urlErr *url.Error
	timedOut := stderrors.Is(err, context.DeadlineExceeded) ||
		(stderrors.As(err, &urlErr) && urlErr.Timeout())

	if timedOut {
		c.logger.Error("catalog service timeout",
			zap.String("tenantId", tenantID),
			zap.String("itemId", itemID))
		return apperrors.NewCatalogUnavailableError(apperrors.CauseTimeout, err)
	}

	c.logger.Error("catalog service unreachable",
		zap.String("tenantId", tenantID),
		zap.String("itemId", itemID),
		zap.Error(err))
	return apperrors.NewCatalogUnavailableError(apperrors.CauseNetwork, err)
}
