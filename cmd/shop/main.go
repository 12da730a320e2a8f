// Command shop is a terminal storefront client. It browses the catalog over
// the HTTP API and drives a locally persisted cart; checkout prints the
// hosted payment URL to open in a browser.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"garage-sale/internal/cart"
	"garage-sale/internal/domain"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	apiURL := flag.String("api", envOrDefault("SHOP_API_URL", "http://localhost:8080"), "storefront API base URL")
	stateDir := flag.String("state", defaultStateDir(), "directory the cart is persisted in")
	flag.Usage = usage
	flag.Parse()

	logger := log.New(os.Stderr, "[shop] ", 0)

	if flag.NArg() < 1 {
		usage()
		os.Exit(2)
	}

	c := cart.New(cart.NewFileStore(*stateDir), logger)
	cli := &shopClient{
		api:  *apiURL,
		http: &http.Client{Timeout: 15 * time.Second},
	}

	if err := run(cli, c, flag.Args()); err != nil {
		logger.Fatalf("%v", err)
	}
}

func run(cli *shopClient, c *cart.Cart, args []string) error {
	switch cmd := args[0]; cmd {
	case "list":
		return cli.listProducts()
	case "cart":
		printCart(c)
		return nil
	case "add":
		id, err := idArg(args)
		if err != nil {
			return err
		}
		product, err := cli.findProduct(id)
		if err != nil {
			return err
		}
		if err := c.Add(*product); err != nil {
			return err
		}
		printCart(c)
		return nil
	case "remove":
		id, err := idArg(args)
		if err != nil {
			return err
		}
		if err := c.Remove(id); err != nil {
			return err
		}
		printCart(c)
		return nil
	case "inc", "dec":
		id, err := idArg(args)
		if err != nil {
			return err
		}
		delta := 1
		if cmd == "dec" {
			delta = -1
		}
		if err := c.Adjust(id, delta); err != nil {
			return err
		}
		printCart(c)
		return nil
	case "checkout":
		return cli.checkout(c)
	default:
		usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

type shopClient struct {
	api  string
	http *http.Client
}

func (c *shopClient) fetchProducts() ([]domain.Product, error) {
	resp, err := c.http.Get(c.api + "/api/products")
	if err != nil {
		return nil, fmt.Errorf("fetch products: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch products: unexpected status %d", resp.StatusCode)
	}
	var products []domain.Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return products, nil
}

func (c *shopClient) listProducts() error {
	products, err := c.fetchProducts()
	if err != nil {
		return err
	}
	for _, p := range products {
		fmt.Printf("%4d  %-30s $%.2f  (%d available)\n", p.ID, p.Name, p.Price, p.AvailableCount)
	}
	return nil
}

func (c *shopClient) findProduct(id int64) (*domain.Product, error) {
	products, err := c.fetchProducts()
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, fmt.Errorf("product %d not in catalog", id)
}

// checkout sends the cart's (id, quantity) pairs to the API. An empty cart
// never leaves the client. The request is synchronous, so a second checkout
// cannot start while one is outstanding.
func (c *shopClient) checkout(crt *cart.Cart) error {
	if crt.Empty() {
		return fmt.Errorf("cart is empty")
	}

	type item struct {
		ID       int64 `json:"id"`
		Quantity int   `json:"quantity"`
	}
	payload := struct {
		Products []item `json:"products"`
	}{}
	for _, line := range crt.Lines() {
		payload.Products = append(payload.Products, item{ID: line.Product.ID, Quantity: line.Quantity})
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	resp, err := c.http.Post(c.api+"/api/checkout", "application/json", bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("checkout request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read checkout response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		var failure struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(body, &failure) == nil && failure.Error != "" {
			return fmt.Errorf("checkout failed (%d): %s", resp.StatusCode, failure.Error)
		}
		return fmt.Errorf("checkout failed with status %d", resp.StatusCode)
	}

	var ok struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(body, &ok); err != nil {
		return fmt.Errorf("decode checkout response: %w", err)
	}
	fmt.Printf("open this URL to pay:\n%s\n", ok.URL)
	return nil
}

func printCart(c *cart.Cart) {
	lines := c.Lines()
	if len(lines) == 0 {
		fmt.Println("cart is empty")
		return
	}
	var total float64
	for _, line := range lines {
		fmt.Printf("%4d  %-30s x%d  $%.2f\n", line.Product.ID, line.Product.Name, line.Quantity, line.Product.Price*float64(line.Quantity))
		total += line.Product.Price * float64(line.Quantity)
	}
	fmt.Printf("      total: $%.2f\n", total)
}

func idArg(args []string) (int64, error) {
	if len(args) < 2 {
		return 0, fmt.Errorf("%s requires a product id", args[0])
	}
	id, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid product id %q", args[1])
	}
	return id, nil
}

func defaultStateDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(base, "garage-sale")
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func usage() {
	fmt.Fprintf(os.Stderr, `usage: shop [flags] <command> [args]

commands:
  list           show the catalog
  cart           show the saved cart
  add <id>       add one unit of a product
  remove <id>    drop a product from the cart
  inc <id>       increase a line's quantity by one
  dec <id>       decrease a line's quantity by one
  checkout       create a payment session and print its URL

flags:
`)
	flag.PrintDefaults()
}
