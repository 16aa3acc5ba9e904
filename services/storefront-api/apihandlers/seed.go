package apihandlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	storeDB "github.com/acai-prime/store-backend/pkg/db/store"
)

var productSeed = []storeDB.Product{
	{
		Name:        "Açaí 300ml",
		Description: "Perfeito para matar aquela vontade! Açaí cremoso batido na hora, acompanha granola crocante e banana. Tamanho ideal para um lanche rápido e delicioso.",
		Price:       "9.90",
		Size:        "300ml",
		Image:       "/assets/generated_images/Small_açaí_bowl_product_e5ef7191.png",
		PromoBadge:  "Mais Barato",
	},
	{
		Name:        "Açaí 500ml",
		Description: "O favorito dos clientes! Quantidade generosa de açaí puro, batido no ponto ideal de cremosidade. Escolha seus complementos grátis e personalize do seu jeito.",
		Price:       "14.90",
		Size:        "500ml",
		Image:       "/assets/generated_images/Large_açaí_bowl_product_185591f7.png",
		PromoBadge:  "Mais Vendido",
	},
	{
		Name:        "Açaí 700ml",
		Description: "Para quem ama açaí de verdade! Porção extra grande com muito espaço para combinar suas frutas e coberturas favoritas. Satisfação garantida!",
		Price:       "18.90",
		Size:        "700ml",
		Image:       "/assets/generated_images/Large_açaí_bowl_product_185591f7.png",
	},
	{
		Name:        "Açaí 1 Litro",
		Description: "O gigante! 1 litro de puro açaí cremoso. Ideal para compartilhar ou para quem não abre mão de uma porção farta. O melhor custo-benefício!",
		Price:       "29.90",
		Size:        "1L",
		Image:       "/assets/generated_images/Large_açaí_bowl_product_185591f7.png",
		PromoBadge:  "Melhor Custo-Benefício",
	},
	{
		Name:        "🫐 Combo Duo (Casal)",
		Description: "Ideal pra dividir açaí e bons momentos! 1 Açaí de 500ml + 1 Açaí de 700ml com calda de chocolate grátis. Perfeito para casais apaixonados por açaí.",
		Price:       "31.90",
		Size:        "500ml + 700ml",
		Image:       "/assets/generated_images/Açaí_combo_product_image_5986e6cc.png",
		PromoBadge:  "Economize R$ 2",
	},
	{
		Name:        "🍫 Combo Chocolate Lovers",
		Description: "Combinação perfeita para quem ama um toque doce e cremoso! 1 Açaí 700ml + 1 Açaí 300ml com extra de Nutella e Leite Ninho inclusos. Irresistível!",
		Price:       "26.90",
		Size:        "700ml + 300ml",
		Image:       "/assets/generated_images/Açaí_combo_product_image_5986e6cc.png",
	},
	{
		Name:        "🏋️‍♂️ Combo Power Fit",
		Description: "Energia e sabor pra quem não abre mão de performance! 2 Açaís de 500ml com Whey Protein, Pasta de Amendoim e Banana. Nutrição completa!",
		Price:       "32.90",
		Size:        "2x 500ml",
		Image:       "/assets/generated_images/Açaí_combo_product_image_5986e6cc.png",
		PromoBadge:  "Fit",
	},
	{
		Name:        "🍓 Combo Família",
		Description: "Serve até 3 pessoas! 2 Açaís de 700ml + 1 Açaí de 500ml com 3 acompanhamentos à escolha. Perfeito pra família ou amigos se reunirem!",
		Price:       "59.90",
		Size:        "2x 700ml + 500ml",
		Image:       "/assets/generated_images/Açaí_combo_product_image_5986e6cc.png",
		PromoBadge:  "Economize R$ 7",
	},
	{
		Name:        "💜 Combo Supreme",
		Description: "Um banquete de açaí! 1 Açaí de 1 litro com Nutella, Leite Ninho e Morango inclusos. Irresistível, cremoso e generoso. A experiência premium!",
		Price:       "37.90",
		Size:        "1L Premium",
		Image:       "/assets/generated_images/Açaí_combo_product_image_5986e6cc.png",
		PromoBadge:  "Premium",
	},
	{
		Name:        "🧒 Combo Kids",
		Description: "Do jeitinho que a criançada ama! 1 Açaí de 300ml com Confete, Calda de Morango e Granola Doce inclusos. Alegria garantida para os pequenos!",
		Price:       "12.90",
		Size:        "300ml Kids",
		Image:       "/assets/generated_images/Small_açaí_bowl_product_e5ef7191.png",
	},
	{
		Name:        "🧊 Combo Refrescante",
		Description: "Leve, tropical e com sabor de verão! 2 Açaís de 500ml com Abacaxi, Coco Ralado e Mel inclusos. Refrescância em dose dupla!",
		Price:       "28.90",
		Size:        "2x 500ml",
		Image:       "/assets/generated_images/Açaí_combo_product_image_5986e6cc.png",
		PromoBadge:  "Tropical",
	},
}

var toppingSeed = []storeDB.Topping{
	{Name: "Morango", Category: "fruit", Price: "0.00", DisplayOrder: 1},
	{Name: "Banana", Category: "fruit", Price: "0.00", DisplayOrder: 2},
	{Name: "Kiwi", Category: "fruit", Price: "0.00", DisplayOrder: 3},
	{Name: "Manga", Category: "fruit", Price: "0.00", DisplayOrder: 4},
	{Name: "Framboesa", Category: "fruit", Price: "0.00", DisplayOrder: 5},
	{Name: "Mirtilo", Category: "fruit", Price: "0.00", DisplayOrder: 6},
	{Name: "Uva", Category: "fruit", Price: "0.00", DisplayOrder: 7},
	{Name: "Abacaxi", Category: "fruit", Price: "0.00", DisplayOrder: 8},
	{Name: "Melancia", Category: "fruit", Price: "0.00", DisplayOrder: 9},
	{Name: "Maracujá", Category: "fruit", Price: "0.00", DisplayOrder: 10},
	{Name: "Pêssego", Category: "fruit", Price: "0.00", DisplayOrder: 11},
	{Name: "Amora", Category: "fruit", Price: "0.00", DisplayOrder: 12},
	{Name: "Cereja", Category: "fruit", Price: "0.00", DisplayOrder: 13},
	{Name: "Goiaba", Category: "fruit", Price: "0.00", DisplayOrder: 14},
	{Name: "Leite Condensado", Category: "topping", Price: "0.00", DisplayOrder: 20},
	{Name: "Chocolate", Category: "topping", Price: "0.00", DisplayOrder: 21},
	{Name: "Nutella", Category: "topping", Price: "0.00", DisplayOrder: 22},
	{Name: "Mel", Category: "topping", Price: "0.00", DisplayOrder: 23},
	{Name: "Doce de Leite", Category: "topping", Price: "0.00", DisplayOrder: 24},
	{Name: "Calda de Morango", Category: "topping", Price: "0.00", DisplayOrder: 25},
	{Name: "Calda de Caramelo", Category: "topping", Price: "0.00", DisplayOrder: 26},
	{Name: "Pasta de Amendoim", Category: "topping", Price: "0.00", DisplayOrder: 27},
	{Name: "Chantilly", Category: "topping", Price: "0.00", DisplayOrder: 28},
	{Name: "Geleia de Frutas", Category: "topping", Price: "0.00", DisplayOrder: 29},
	{Name: "Leite em Pó", Category: "topping", Price: "0.00", DisplayOrder: 30},
	{Name: "Caramelo Salgado", Category: "topping", Price: "0.00", DisplayOrder: 31},
	{Name: "Chocolate Branco", Category: "topping", Price: "0.00", DisplayOrder: 32},
	{Name: "Granola", Category: "extra", Price: "0.00", DisplayOrder: 40},
	{Name: "Aveia", Category: "extra", Price: "0.00", DisplayOrder: 41},
	{Name: "Chia", Category: "extra", Price: "0.00", DisplayOrder: 42},
	{Name: "Coco Ralado", Category: "extra", Price: "0.00", DisplayOrder: 43},
	{Name: "Paçoca", Category: "extra", Price: "0.00", DisplayOrder: 44},
	{Name: "Castanhas", Category: "extra", Price: "0.00", DisplayOrder: 45},
	{Name: "Amendoim", Category: "extra", Price: "0.00", DisplayOrder: 46},
	{Name: "M&M's", Category: "extra", Price: "0.00", DisplayOrder: 47},
	{Name: "Kit Kat", Category: "extra", Price: "0.00", DisplayOrder: 48},
	{Name: "Bis", Category: "extra", Price: "0.00", DisplayOrder: 49},
	{Name: "Sucrilhos", Category: "extra", Price: "0.00", DisplayOrder: 50},
	{Name: "Flocos de Arroz", Category: "extra", Price: "0.00", DisplayOrder: 51},
	{Name: "Marshmallow", Category: "extra", Price: "0.00", DisplayOrder: 52},
	{Name: "Confete", Category: "extra", Price: "0.00", DisplayOrder: 53},
	{Name: "Jujuba", Category: "extra", Price: "0.00", DisplayOrder: 54},
	{Name: "Brownie", Category: "extra", Price: "0.00", DisplayOrder: 55},
	{Name: "Oreo", Category: "extra", Price: "0.00", DisplayOrder: 56},
	{Name: "Chokito", Category: "extra", Price: "0.00", DisplayOrder: 57},
	{Name: "Neston", Category: "extra", Price: "0.00", DisplayOrder: 58},
	{Name: "Leite Ninho", Category: "extra", Price: "0.00", DisplayOrder: 59},
	{Name: "Colher e Guardanapo", Category: "extra", Price: "0.00", DisplayOrder: 60},
}

func (h *HttpEndpoints) seedProducts(c *gin.Context) {
	if !h.debugMode {
		c.JSON(http.StatusForbidden, gin.H{"error": "seeding is only available in debug mode"})
		return
	}

	existing, err := h.storeDBConn.CountProducts()
	if err != nil {
		slog.Error("failed to count products", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error seeding products"})
		return
	}
	if existing > 0 {
		c.JSON(http.StatusOK, gin.H{"message": "products already exist"})
		return
	}

	for _, product := range productSeed {
		product.Available = true
		product.CreatedAt = time.Now()
		if _, err := h.storeDBConn.CreateProduct(product); err != nil {
			slog.Error("failed to seed product", slog.String("name", product.Name), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error seeding products"})
			return
		}
	}

	slog.Info("seeded products", slog.Int("count", len(productSeed)))
	c.JSON(http.StatusOK, gin.H{"message": "products seeded successfully"})
}

func (h *HttpEndpoints) seedToppings(c *gin.Context) {
	if !h.debugMode {
		c.JSON(http.StatusForbidden, gin.H{"error": "seeding is only available in debug mode"})
		return
	}

	existing, err := h.storeDBConn.CountToppings()
	if err != nil {
		slog.Error("failed to count toppings", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error seeding toppings"})
		return
	}
	if existing > 0 {
		c.JSON(http.StatusOK, gin.H{"message": "toppings already exist"})
		return
	}

	for _, topping := range toppingSeed {
		topping.CreatedAt = time.Now()
		if _, err := h.storeDBConn.CreateTopping(topping); err != nil {
			slog.Error("failed to seed topping", slog.String("name", topping.Name), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error seeding toppings"})
			return
		}
	}

	slog.Info("seeded toppings", slog.Int("count", len(toppingSeed)))
	c.JSON(http.StatusOK, gin.H{"message": "toppings seeded successfully"})
}
