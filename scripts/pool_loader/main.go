// 词库导入工具：从xlsx表格向challenge_pool_entries追加条目。
// 列顺序：A单词 B释义 C例句 D习语 E习语释义 F习语例句，默认跳过表头。
//
// 用法: go run scripts/pool_loader/main.go -file pool.xlsx [-sheet Sheet1]
package main

import (
	"flag"
	"log"

	"fluentleap_backend/internal/config"
	"fluentleap_backend/internal/model"
	"fluentleap_backend/internal/repository"
	"fluentleap_backend/pkg/database"

	"github.com/joho/godotenv"
	"github.com/xuri/excelize/v2"
)

func main() {
	filePath := flag.String("file", "", "xlsx文件路径")
	sheetName := flag.String("sheet", "Sheet1", "工作表名")
	skipHeader := flag.Bool("skip-header", true, "跳过表头行")
	flag.Parse()

	if *filePath == "" {
		log.Fatal("missing -file")
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	f, err := excelize.OpenFile(*filePath)
	if err != nil {
		log.Fatalf("Failed to open %s: %v", *filePath, err)
	}
	defer f.Close()

	rows, err := f.GetRows(*sheetName)
	if err != nil {
		log.Fatalf("Failed to read sheet %s: %v", *sheetName, err)
	}

	pool := repository.NewPoolRepository(db)
	count, err := pool.Count()
	if err != nil {
		log.Fatalf("Failed to count pool entries: %v", err)
	}
	// 追加到现有词库末尾，position保持连续
	position := int(count)

	imported := 0
	for i, row := range rows {
		if *skipHeader && i == 0 {
			continue
		}
		if len(row) < 5 || row[0] == "" || row[3] == "" {
			log.Printf("Skipping row %d: incomplete", i+1)
			continue
		}

		entry := &model.ChallengePoolEntry{
			Position:     position,
			Word:         row[0],
			WordMeaning:  row[1],
			WordExample:  cell(row, 2),
			Idiom:        row[3],
			IdiomMeaning: cell(row, 4),
			IdiomExample: cell(row, 5),
		}
		if err := pool.Create(entry); err != nil {
			log.Fatalf("Failed to insert row %d: %v", i+1, err)
		}
		position++
		imported++
	}

	log.Printf("Imported %d pool entries, pool size is now %d", imported, position)
}

func cell(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}
