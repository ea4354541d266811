package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"github.com/yeonlog/storefront-admin-backend/config"
	"github.com/yeonlog/storefront-admin-backend/internal/app/model"
	"github.com/yeonlog/storefront-admin-backend/internal/app/repository"
	"github.com/yeonlog/storefront-admin-backend/internal/db"
)

// 상품 일괄 등록 도구.
// XLSX 형식: 이름 | 가격 | 카테고리 | 사이즈 | 색상 | 이미지 URL(쉼표 구분) | 메인 노출(yes/no)
// 카테고리/사이즈/색상은 이름으로 찾고, 없으면 새로 만든다.
func main() {
	if len(os.Args) < 3 {
		log.Fatal("Usage: go run cmd/seed/main.go <store_id> <xlsx_file_path>")
	}

	storeID := os.Args[1]
	filePath := os.Args[2]

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	storeRepo := repository.NewStoreRepository(db.GetDB())
	billboardRepo := repository.NewBillboardRepository(db.GetDB())
	categoryRepo := repository.NewCategoryRepository(db.GetDB())
	sizeRepo := repository.NewSizeRepository(db.GetDB())
	colorRepo := repository.NewColorRepository(db.GetDB())
	productRepo := repository.NewProductRepository(db.GetDB())

	store, err := storeRepo.FindByID(storeID)
	if err != nil {
		log.Fatal("Store not found:", err)
	}
	fmt.Printf("Importing products into store: %s (%s)\n", store.Name, store.ID)

	fmt.Printf("Reading XLSX file: %s\n", filePath)
	rows, err := readRows(filePath)
	if err != nil {
		log.Fatal("Failed to read XLSX:", err)
	}
	fmt.Printf("Total products to import: %d\n", len(rows))

	fmt.Print("Do you want to proceed with the import? (yes/no): ")
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "yes" && confirm != "y" {
		fmt.Println("Import cancelled.")
		return
	}

	importer := &productImporter{
		storeID:       storeID,
		billboardRepo: billboardRepo,
		categoryRepo:  categoryRepo,
		sizeRepo:      sizeRepo,
		colorRepo:     colorRepo,
		productRepo:   productRepo,
	}

	imported := 0
	for i, row := range rows {
		if err := importer.importRow(row); err != nil {
			fmt.Printf("Row %d skipped: %v\n", i+2, err)
			continue
		}
		imported++
	}

	fmt.Println("Import completed successfully!")
	fmt.Printf("Total products imported: %d\n", imported)
}

type productRow struct {
	Name       string
	Price      decimal.Decimal
	Category   string
	Size       string
	Color      string
	ImageURLs  []string
	IsFeatured bool
}

func readRows(filePath string) ([]productRow, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no sheets found in XLSX file")
	}
	fmt.Printf("Reading sheet: %s\n", sheetName)

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("no data rows found")
	}

	var result []productRow
	for i, row := range rows[1:] { // 헤더 건너뜀
		if len(row) < 6 {
			fmt.Printf("Row %d skipped: not enough columns\n", i+2)
			continue
		}

		name := strings.TrimSpace(row[0])
		if name == "" {
			continue
		}

		price, err := decimal.NewFromString(strings.TrimSpace(row[1]))
		if err != nil || price.IsNegative() {
			fmt.Printf("Row %d skipped: invalid price %q\n", i+2, row[1])
			continue
		}

		var urls []string
		for _, u := range strings.Split(row[5], ",") {
			if u = strings.TrimSpace(u); u != "" {
				urls = append(urls, u)
			}
		}

		featured := false
		if len(row) > 6 {
			featured, _ = strconv.ParseBool(strings.TrimSpace(row[6]))
			if v := strings.ToLower(strings.TrimSpace(row[6])); v == "yes" || v == "y" {
				featured = true
			}
		}

		result = append(result, productRow{
			Name:       name,
			Price:      price,
			Category:   strings.TrimSpace(row[2]),
			Size:       strings.TrimSpace(row[3]),
			Color:      strings.TrimSpace(row[4]),
			ImageURLs:  urls,
			IsFeatured: featured,
		})
	}
	return result, nil
}

type productImporter struct {
	storeID       string
	billboardRepo repository.BillboardRepository
	categoryRepo  repository.CategoryRepository
	sizeRepo      repository.SizeRepository
	colorRepo     repository.ColorRepository
	productRepo   repository.ProductRepository
}

func (imp *productImporter) importRow(row productRow) error {
	categoryID, err := imp.resolveCategory(row.Category)
	if err != nil {
		return err
	}
	sizeID, err := imp.resolveSize(row.Size)
	if err != nil {
		return err
	}
	colorID, err := imp.resolveColor(row.Color)
	if err != nil {
		return err
	}

	images := make([]model.Image, 0, len(row.ImageURLs))
	for _, url := range row.ImageURLs {
		images = append(images, model.Image{URL: url})
	}

	return imp.productRepo.Create(&model.Product{
		StoreID:    imp.storeID,
		CategoryID: categoryID,
		SizeID:     sizeID,
		ColorID:    colorID,
		Name:       row.Name,
		Price:      row.Price,
		IsFeatured: row.IsFeatured,
		Images:     images,
	})
}

func (imp *productImporter) resolveCategory(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("category name is empty")
	}

	categories, err := imp.categoryRepo.FindAllByStoreID(imp.storeID)
	if err != nil {
		return "", err
	}
	for _, c := range categories {
		if c.Name == name {
			return c.ID, nil
		}
	}

	// 카테고리는 빌보드가 필요하므로 매장 첫 빌보드에 붙인다
	billboards, err := imp.billboardRepo.FindAllByStoreID(imp.storeID)
	if err != nil {
		return "", err
	}
	if len(billboards) == 0 {
		return "", fmt.Errorf("store has no billboard to attach category %q", name)
	}

	category := &model.Category{
		StoreID:     imp.storeID,
		BillboardID: billboards[0].ID,
		Name:        name,
	}
	if err := imp.categoryRepo.Create(category); err != nil {
		return "", err
	}
	fmt.Printf("Created category: %s\n", name)
	return category.ID, nil
}

func (imp *productImporter) resolveSize(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("size name is empty")
	}

	sizes, err := imp.sizeRepo.FindAllByStoreID(imp.storeID)
	if err != nil {
		return "", err
	}
	for _, s := range sizes {
		if s.Name == name {
			return s.ID, nil
		}
	}

	size := &model.Size{
		StoreID: imp.storeID,
		Name:    name,
		Value:   name,
	}
	if err := imp.sizeRepo.Create(size); err != nil {
		return "", err
	}
	fmt.Printf("Created size: %s\n", name)
	return size.ID, nil
}

func (imp *productImporter) resolveColor(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("color name is empty")
	}

	colors, err := imp.colorRepo.FindAllByStoreID(imp.storeID)
	if err != nil {
		return "", err
	}
	for _, c := range colors {
		if c.Name == name {
			return c.ID, nil
		}
	}

	color := &model.Color{
		StoreID: imp.storeID,
		Name:    name,
		Value:   "#000000", // 수입 데이터에 색상 코드가 없어 기본값으로 둔다
	}
	if err := imp.colorRepo.Create(color); err != nil {
		return "", err
	}
	fmt.Printf("Created color: %s\n", name)
	return color.ID, nil
}
