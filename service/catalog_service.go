package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/Imraj-Rabbani/GoCart/models"
	"github.com/Imraj-Rabbani/GoCart/repository"
	"github.com/Imraj-Rabbani/GoCart/utils"
)

// CatalogService renders a seller's product catalog as HTML and exports it
// to PDF through headless Chrome. Implements CatalogServiceInterface.
type CatalogService struct {
	products repository.ProductRepositoryInterface
	baseURL  string // Base URL the render endpoint is reachable at (e.g. "http://localhost:8080")
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(products repository.ProductRepositoryInterface, baseURL string) *CatalogService {
	return &CatalogService{
		products: products,
		baseURL:  baseURL,
	}
}

// Ensure CatalogService implements CatalogServiceInterface
var _ CatalogServiceInterface = (*CatalogService)(nil)

// detectChromePath detects the path to Chrome/Chromium executable.
// Checks CHROME_PATH env var first, then common installation paths.
func detectChromePath() string {
	if chromePath := os.Getenv("CHROME_PATH"); chromePath != "" {
		if _, err := os.Stat(chromePath); err == nil {
			return chromePath
		}
	}

	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// catalogPage groups products into rows of three for the template.
func paginateProducts(products []models.Product) [][]models.Product {
	const itemsPerPage = 9
	var pages [][]models.Product

	for i := 0; i < len(products); i += itemsPerPage {
		end := i + itemsPerPage
		if end > len(products) {
			end = len(products)
		}
		pages = append(pages, products[i:end])
	}

	return pages
}

// RenderCatalogHTML renders the catalog HTML for a store.
func (s *CatalogService) RenderCatalogHTML(ctx context.Context, storeID string) (string, error) {
	products, err := s.products.ListByStore(ctx, storeID)
	if err != nil {
		return "", fmt.Errorf("failed to list products: %w", err)
	}

	templateData := struct {
		StoreID string
		Pages   [][]models.Product
		Prices  map[string]string
	}{
		StoreID: storeID,
		Pages:   paginateProducts(products),
		Prices:  map[string]string{},
	}
	for _, p := range products {
		templateData.Prices[p.ID] = utils.FormatPrice(p.Price)
	}

	templatePath := filepath.Join("templates", "catalog.html")
	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, templateData); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// GeneratePDF renders the catalog page in headless Chrome and prints it to
// PDF.
func (s *CatalogService) GeneratePDF(ctx context.Context, storeID string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox, // Required for running in Docker/containers
	)
	if chromePath := detectChromePath(); chromePath != "" {
		opts = append(opts, chromedp.ExecPath(chromePath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	chromedpCtx, chromedpCancel := chromedp.NewContext(allocCtx)
	defer chromedpCancel()

	renderURL := fmt.Sprintf("%s/admin/catalog/render?store=%s", s.baseURL, storeID)

	var pdfBuf []byte
	err := chromedp.Run(chromedpCtx,
		chromedp.Navigate(renderURL),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to print catalog to PDF: %w", err)
	}

	return pdfBuf, nil
}
