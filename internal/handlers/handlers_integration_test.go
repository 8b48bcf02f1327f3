package handlers_test

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"jajis/internal/handlers"
	"jajis/internal/middleware"
	"jajis/internal/models"
	"jajis/internal/repositories"
	"jajis/internal/services"
	"jajis/pkg/razorpay"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testGatewaySecret = "test_gateway_secret"

// fakeGateway stands in for the payment provider. It issues sequential
// order ids and validates signatures with the same HMAC scheme the real
// gateway uses, so tests can sign their own callbacks.
type fakeGateway struct {
	orders int
}

func (g *fakeGateway) CreateOrder(amountMinor int64, currency string, receipt string) (*razorpay.OrderResponse, error) {
	g.orders++
	return &razorpay.OrderResponse{
		ID:       fmt.Sprintf("order_test_%d", g.orders),
		Amount:   amountMinor,
		Currency: currency,
		Status:   "created",
	}, nil
}

func (g *fakeGateway) VerifySignature(orderID string, paymentID string, signature string) bool {
	return hmac.Equal([]byte(signTestPayment(orderID, paymentID)), []byte(signature))
}

func (g *fakeGateway) KeyID() string {
	return "rzp_test_key"
}

func signTestPayment(orderID string, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(testGatewaySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

type testEnv struct {
	app *fiber.App
	db  *gorm.DB
}

// setupTestEnv wires the full application against an isolated in-memory
// SQLite database, with the payment gateway faked and notifications off.
func setupTestEnv(t *testing.T) *testEnv {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.ProductVariant{},
		&models.CartItem{},
		&models.WishlistItem{},
		&models.Address{},
		&models.Order{},
		&models.OrderItem{},
		&models.PaymentTransaction{},
		&models.PasswordResetOTP{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	userRepo := repositories.NewGORMUserRepository(db)
	otpRepo := repositories.NewGORMOTPRepository(db)
	catalogRepo := repositories.NewGORMCatalogRepository(db)
	cartRepo := repositories.NewGORMCartRepository(db)
	wishlistRepo := repositories.NewGORMWishlistRepository(db)
	addressRepo := repositories.NewGORMAddressRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)
	paymentRepo := repositories.NewGORMPaymentTransactionRepository(db)
	txRunner := repositories.NewGORMTxRunner(db)

	authService := services.NewAuthService(userRepo, otpRepo, nil, "test_jwt_secret")
	catalogService := services.NewCatalogService(catalogRepo)
	cartService := services.NewCartService(cartRepo, catalogRepo)
	wishlistService := services.NewWishlistService(wishlistRepo, catalogRepo)
	addressService := services.NewAddressService(addressRepo)
	orderService := services.NewOrderService(orderRepo)
	checkoutService := services.NewCheckoutService(
		addressRepo, cartRepo, paymentRepo, userRepo,
		txRunner, &fakeGateway{}, nil, "INR",
	)

	app := fiber.New()
	apiV1 := app.Group("/api/v1")

	authHandler := handlers.NewAuthHandler(authService)
	authHandler.RegisterRoutes(apiV1)
	handlers.NewProductHandler(catalogService).RegisterRoutes(apiV1)

	protected := apiV1.Group("", middleware.AuthRequired(authService))
	authHandler.RegisterProtectedRoutes(protected)
	handlers.NewCartHandler(cartService).RegisterRoutes(protected)
	handlers.NewWishlistHandler(wishlistService).RegisterRoutes(protected)
	handlers.NewAddressHandler(addressService).RegisterRoutes(protected)
	handlers.NewPaymentHandler(checkoutService).RegisterRoutes(protected)
	handlers.NewOrderHandler(orderService).RegisterRoutes(protected)

	return &testEnv{app: app, db: db}
}

// seedCatalog inserts one category, product, and variant and returns the
// variant id.
func (e *testEnv) seedCatalog(t *testing.T, price float64, stock int) string {
	category := models.Category{ID: "cat-1", Name: "Spices"}
	if err := e.db.Create(&category).Error; err != nil {
		t.Fatalf("Failed to seed category: %v", err)
	}
	product := models.Product{
		ID:         "prod-1",
		CategoryID: category.ID,
		Title:      "Turmeric Powder",
		Brand:      "jajis",
	}
	if err := e.db.Create(&product).Error; err != nil {
		t.Fatalf("Failed to seed product: %v", err)
	}
	variant := models.ProductVariant{
		ID:            "var-1",
		ProductID:     product.ID,
		QuantityLabel: "500g",
		MRP:           price * 1.2,
		Price:         price,
		Stock:         stock,
	}
	if err := e.db.Create(&variant).Error; err != nil {
		t.Fatalf("Failed to seed variant: %v", err)
	}
	return variant.ID
}

func (e *testEnv) request(t *testing.T, method, path, token string, body interface{}) (*http.Response, map[string]interface{}) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("Failed to encode request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, "/api/v1"+path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := e.app.Test(req, -1)
	if err != nil {
		t.Fatalf("Request %s %s failed: %v", method, path, err)
	}
	var parsed map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		parsed = nil
	}
	return resp, parsed
}

// registerAndLogin creates an account and returns its auth token.
func (e *testEnv) registerAndLogin(t *testing.T, username string) string {
	resp, _ := e.request(t, "POST", "/auth/register", "", fiber.Map{
		"username": username,
		"email":    username + "@example.com",
		"password": "password123",
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, body := e.request(t, "POST", "/auth/login", "", fiber.Map{
		"username": username,
		"password": "password123",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	token, _ := body["token"].(string)
	assert.NotEmpty(t, token)
	return token
}

func (e *testEnv) createAddress(t *testing.T, token string) string {
	resp, body := e.request(t, "POST", "/addresses/", token, fiber.Map{
		"line1":       "12 Market Road",
		"city":        "Pune",
		"postal_code": "411001",
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	id, _ := body["id"].(string)
	assert.NotEmpty(t, id)
	return id
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	env := setupTestEnv(t)

	resp, _ := env.request(t, "GET", "/cart/", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, _ = env.request(t, "POST", "/payment/create", "", fiber.Map{})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestCheckoutFlow_EndToEnd(t *testing.T) {
	env := setupTestEnv(t)
	variantID := env.seedCatalog(t, 500, 10)
	token := env.registerAndLogin(t, "buyer")
	addressID := env.createAddress(t, token)

	// Two units at 500 each.
	resp, _ := env.request(t, "POST", "/cart/add", token, fiber.Map{
		"variant_id": variantID,
		"quantity":   2,
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, intent := env.request(t, "POST", "/payment/create", token, fiber.Map{
		"shipping_address_id": addressID,
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 1000.0, intent["amount"])
	assert.Equal(t, "INR", intent["currency"])
	assert.Equal(t, "rzp_test_key", intent["key"])
	gatewayOrderID, _ := intent["order_id"].(string)
	assert.NotEmpty(t, gatewayOrderID)

	resp, verified := env.request(t, "POST", "/payment/verify", token, fiber.Map{
		"razorpay_order_id":   gatewayOrderID,
		"razorpay_payment_id": "pay_test_1",
		"razorpay_signature":  signTestPayment(gatewayOrderID, "pay_test_1"),
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Payment verified successfully", verified["message"])
	orderID, _ := verified["order_id"].(string)
	assert.NotEmpty(t, orderID)

	// The order is visible with the intent-time total and its item snapshot.
	resp, order := env.request(t, "GET", "/orders/"+orderID, token, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 1000.0, order["total_amount"])
	assert.Equal(t, "confirmed", order["status"])
	items, _ := order["items"].([]interface{})
	assert.Len(t, items, 1)

	// The cart is now empty and the stock decremented.
	resp, cart := env.request(t, "GET", "/cart/", token, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 0.0, cart["total"])

	var variant models.ProductVariant
	assert.NoError(t, env.db.First(&variant, "id = ?", variantID).Error)
	assert.Equal(t, 8, variant.Stock)
}

func TestCheckoutFlow_DuplicateVerifyRejected(t *testing.T) {
	env := setupTestEnv(t)
	variantID := env.seedCatalog(t, 500, 10)
	token := env.registerAndLogin(t, "buyer")
	addressID := env.createAddress(t, token)

	resp, _ := env.request(t, "POST", "/cart/add", token, fiber.Map{
		"variant_id": variantID,
		"quantity":   1,
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, intent := env.request(t, "POST", "/payment/create", token, fiber.Map{
		"shipping_address_id": addressID,
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	gatewayOrderID, _ := intent["order_id"].(string)

	payload := fiber.Map{
		"razorpay_order_id":   gatewayOrderID,
		"razorpay_payment_id": "pay_test_1",
		"razorpay_signature":  signTestPayment(gatewayOrderID, "pay_test_1"),
	}
	resp, _ = env.request(t, "POST", "/payment/verify", token, payload)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Replaying the callback must not create a second order.
	resp, body := env.request(t, "POST", "/payment/verify", token, payload)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Transaction already processed", body["error"])

	var orderCount int64
	env.db.Model(&models.Order{}).Count(&orderCount)
	assert.Equal(t, int64(1), orderCount)
}

func TestCheckoutFlow_ForgedSignatureFailsTransaction(t *testing.T) {
	env := setupTestEnv(t)
	variantID := env.seedCatalog(t, 500, 10)
	token := env.registerAndLogin(t, "buyer")
	addressID := env.createAddress(t, token)

	resp, _ := env.request(t, "POST", "/cart/add", token, fiber.Map{
		"variant_id": variantID,
		"quantity":   1,
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, intent := env.request(t, "POST", "/payment/create", token, fiber.Map{
		"shipping_address_id": addressID,
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	gatewayOrderID, _ := intent["order_id"].(string)

	resp, body := env.request(t, "POST", "/payment/verify", token, fiber.Map{
		"razorpay_order_id":   gatewayOrderID,
		"razorpay_payment_id": "pay_test_1",
		"razorpay_signature":  "forged",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Payment verification failed", body["error"])

	// No order was created, the cart survives, and the transaction is failed.
	var orderCount int64
	env.db.Model(&models.Order{}).Count(&orderCount)
	assert.Equal(t, int64(0), orderCount)

	resp, cart := env.request(t, "GET", "/cart/", token, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 500.0, cart["total"])

	var tx models.PaymentTransaction
	assert.NoError(t, env.db.First(&tx, "gateway_order_id = ?", gatewayOrderID).Error)
	assert.Equal(t, models.TxStatusFailed, tx.Status)
}

func TestCreatePayment_EmptyCart(t *testing.T) {
	env := setupTestEnv(t)
	token := env.registerAndLogin(t, "buyer")
	addressID := env.createAddress(t, token)

	resp, body := env.request(t, "POST", "/payment/create", token, fiber.Map{
		"shipping_address_id": addressID,
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Cart is empty", body["error"])
}

func TestCreatePayment_UnknownAddress(t *testing.T) {
	env := setupTestEnv(t)
	variantID := env.seedCatalog(t, 500, 10)
	token := env.registerAndLogin(t, "buyer")

	resp, _ := env.request(t, "POST", "/cart/add", token, fiber.Map{
		"variant_id": variantID,
		"quantity":   1,
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, body := env.request(t, "POST", "/payment/create", token, fiber.Map{
		"shipping_address_id": "no-such-address",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid shipping address", body["error"])
}

func TestNewIntentSupersedesStaleOne(t *testing.T) {
	env := setupTestEnv(t)
	variantID := env.seedCatalog(t, 500, 10)
	token := env.registerAndLogin(t, "buyer")
	addressID := env.createAddress(t, token)

	resp, _ := env.request(t, "POST", "/cart/add", token, fiber.Map{
		"variant_id": variantID,
		"quantity":   1,
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, first := env.request(t, "POST", "/payment/create", token, fiber.Map{
		"shipping_address_id": addressID,
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	staleOrderID, _ := first["order_id"].(string)

	// The user edits the cart and starts over.
	resp, _ = env.request(t, "POST", "/cart/add", token, fiber.Map{
		"variant_id": variantID,
		"quantity":   1,
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, second := env.request(t, "POST", "/payment/create", token, fiber.Map{
		"shipping_address_id": addressID,
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 1000.0, second["amount"])

	// Verifying against the superseded intent is refused.
	resp, body := env.request(t, "POST", "/payment/verify", token, fiber.Map{
		"razorpay_order_id":   staleOrderID,
		"razorpay_payment_id": "pay_test_1",
		"razorpay_signature":  signTestPayment(staleOrderID, "pay_test_1"),
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Transaction not found", body["error"])
}

func TestCartRemoveThenReAdd(t *testing.T) {
	env := setupTestEnv(t)
	variantID := env.seedCatalog(t, 500, 10)
	token := env.registerAndLogin(t, "buyer")

	resp, _ := env.request(t, "POST", "/cart/add", token, fiber.Map{
		"variant_id": variantID,
		"quantity":   2,
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, cart := env.request(t, "GET", "/cart/", token, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	items, _ := cart["items"].([]interface{})
	assert.Len(t, items, 1)
	line, _ := items[0].(map[string]interface{})
	lineID, _ := line["id"].(string)

	resp, _ = env.request(t, "POST", "/cart/remove", token, fiber.Map{
		"item_id": lineID,
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Removing a line must free the (user, variant) pair for a fresh add.
	resp, _ = env.request(t, "POST", "/cart/add", token, fiber.Map{
		"variant_id": variantID,
		"quantity":   1,
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, cart = env.request(t, "GET", "/cart/", token, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 500.0, cart["total"])
}

func TestCheckoutFlow_RebuySameVariant(t *testing.T) {
	env := setupTestEnv(t)
	variantID := env.seedCatalog(t, 500, 10)
	token := env.registerAndLogin(t, "buyer")
	addressID := env.createAddress(t, token)

	buy := func(paymentID string) {
		resp, _ := env.request(t, "POST", "/cart/add", token, fiber.Map{
			"variant_id": variantID,
			"quantity":   1,
		})
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		resp, intent := env.request(t, "POST", "/payment/create", token, fiber.Map{
			"shipping_address_id": addressID,
		})
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		gatewayOrderID, _ := intent["order_id"].(string)

		resp, _ = env.request(t, "POST", "/payment/verify", token, fiber.Map{
			"razorpay_order_id":   gatewayOrderID,
			"razorpay_payment_id": paymentID,
			"razorpay_signature":  signTestPayment(gatewayOrderID, paymentID),
		})
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	// The same variant must be purchasable again after a committed
	// checkout cleared it from the cart.
	buy("pay_test_1")
	buy("pay_test_2")

	var orderCount int64
	env.db.Model(&models.Order{}).Count(&orderCount)
	assert.Equal(t, int64(2), orderCount)

	var variant models.ProductVariant
	assert.NoError(t, env.db.First(&variant, "id = ?", variantID).Error)
	assert.Equal(t, 8, variant.Stock)
}

func TestWishlistToggleOffThenOn(t *testing.T) {
	env := setupTestEnv(t)
	variantID := env.seedCatalog(t, 500, 10)
	token := env.registerAndLogin(t, "buyer")

	resp, body := env.request(t, "POST", "/wishlist/toggle", token, fiber.Map{
		"variant_id": variantID,
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, true, body["toggled"])

	resp, body = env.request(t, "POST", "/wishlist/toggle", token, fiber.Map{
		"variant_id": variantID,
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, false, body["toggled"])

	// Toggling back on re-creates the same (user, variant) pair.
	resp, body = env.request(t, "POST", "/wishlist/toggle", token, fiber.Map{
		"variant_id": variantID,
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, true, body["toggled"])

	resp, wishlist := env.request(t, "GET", "/wishlist/", token, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	items, _ := wishlist["items"].([]interface{})
	assert.Len(t, items, 1)
}

func TestProductListingIsPublic(t *testing.T) {
	env := setupTestEnv(t)
	env.seedCatalog(t, 500, 10)

	resp, body := env.request(t, "GET", "/products/", "", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	products, _ := body["products"].([]interface{})
	assert.Len(t, products, 1)
}
