package router

import (
	"net/http"

	"github.com/Imraj-Rabbani/GoCart/app/controller"
)

type Controllers struct {
	Design  *controller.DesignController
	Store   *controller.StoreController
	Product *controller.ProductController
	Cart    *controller.CartController
	Order   *controller.OrderController
	Admin   *controller.AdminController
	Catalog *controller.CatalogController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func SetupRoutes(controllers *Controllers) {
	// Ping endpoint
	http.HandleFunc("/ping", pingHandler)

	// Design studio: submit a design (POST) or list published designs (GET)
	http.HandleFunc("/api/store/design", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			controllers.Design.SubmitDesign(w, r)
		} else if r.Method == http.MethodGet {
			controllers.Design.ListDesigns(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Store application and status
	http.HandleFunc("/api/store/create", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			controllers.Store.CreateStore(w, r)
		} else if r.Method == http.MethodGet {
			controllers.Store.StoreStatus(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Seller check
	http.HandleFunc("/api/store/is-seller", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		controllers.Store.IsSeller(w, r)
	})

	// Public storefront data
	http.HandleFunc("/api/store/data", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		controllers.Store.StoreData(w, r)
	})

	// Products
	http.HandleFunc("/api/store/product", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			controllers.Product.CreateProduct(w, r)
		} else if r.Method == http.MethodGet {
			controllers.Product.ListProducts(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	http.HandleFunc("/api/store/stock-toggle", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		controllers.Product.ToggleStock(w, r)
	})

	// Cart
	http.HandleFunc("/api/cart", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			controllers.Cart.UpdateCart(w, r)
		} else if r.Method == http.MethodGet {
			controllers.Cart.GetCart(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Orders
	http.HandleFunc("/api/orders", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			controllers.Order.PlaceOrder(w, r)
		} else if r.Method == http.MethodGet {
			controllers.Order.ListOrders(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	http.HandleFunc("/api/store/orders", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			controllers.Order.ListStoreOrders(w, r)
		} else if r.Method == http.MethodPost {
			controllers.Order.UpdateOrderStatus(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Admin
	http.HandleFunc("/api/admin/toggle-store", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		controllers.Admin.ToggleStore(w, r)
	})

	// Catalog export
	http.HandleFunc("/admin/catalog/render", controllers.Catalog.RenderCatalog)
	http.HandleFunc("/api/store/catalog/download", controllers.Catalog.DownloadCatalog)
}
