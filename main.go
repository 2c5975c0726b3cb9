package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"bevauto/config"
)

// modes 는 이번 실행에서 만들 산출물입니다.
type modes struct {
	orderSheets bool
	labels      bool
	inventory   bool
}

func (m modes) orders() bool {
	return m.orderSheets || m.labels
}

// selectModes 는 옵션이 하나도 없으면 전부 실행합니다.
func selectModes(all, ordersOnly, labelsOnly, inventoryOnly bool) modes {
	if all || (!ordersOnly && !labelsOnly && !inventoryOnly) {
		return modes{orderSheets: true, labels: true, inventory: true}
	}
	return modes{orderSheets: ordersOnly, labels: labelsOnly, inventory: inventoryOnly}
}

func main() {
	_ = godotenv.Load()

	configPath := flag.String("config", config.DefaultConfigFilePath, "설정 파일 (.json / .yaml)")
	all := flag.Bool("all", false, "모든 기능 실행 (기본값)")
	ordersOnly := flag.Bool("orders-only", false, "업체별 주문서만 생성")
	labelsOnly := flag.Bool("labels-only", false, "팔레트 라벨만 생성")
	inventoryOnly := flag.Bool("inventory-only", false, "재고표만 생성")
	orderFile := flag.String("order-file", "", "SAP 주문 파일 경로")
	companyFile := flag.String("company-file", "", "업체명 정보 파일 경로")
	inventoryFile := flag.String("inventory-file", "", "재고 파일 경로")
	outDir := flag.String("out", "", "출력 기준 폴더")
	renderer := flag.String("renderer", "", "문서 형식: pdf | html")
	initConfig := flag.Bool("init-config", false, "기본 설정 파일을 쓰고 종료")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Printf("WARN: Failed to load config file: %v. Using defaults.", err)
	}

	if *initConfig {
		if err := config.SaveConfig(*configPath, config.Default()); err != nil {
			log.Fatalf("failed to write config: %v", err)
		}
		log.Printf("Default config written to %s", *configPath)
		return
	}

	overrides := map[*string]string{
		&cfg.OrderFile:     *orderFile,
		&cfg.CompanyFile:   *companyFile,
		&cfg.InventoryFile: *inventoryFile,
		&cfg.OutputDir:     *outDir,
		&cfg.Renderer:      *renderer,
	}
	for dst, v := range overrides {
		if v != "" {
			*dst = v
		}
	}

	m := selectModes(*all, *ordersOnly, *labelsOnly, *inventoryOnly)
	if err := checkInputs(cfg, m); err != nil {
		log.Fatalf("오류: %v", err)
	}

	start := time.Now()
	runDir := filepath.Join(cfg.OutputDir, "output_"+start.Format("20060102_150405"))
	if err := os.MkdirAll(runDir, 0755); err != nil {
		log.Fatalf("failed to create output directory: %v", err)
	}

	runID := uuid.NewString()
	logFile, err := os.Create(filepath.Join(runDir, "run.log"))
	if err != nil {
		log.Printf("WARN: run.log not created: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(io.MultiWriter(os.Stderr, logFile))
	}
	log.SetPrefix(fmt.Sprintf("[%s] ", runID[:8]))
	log.Printf("Run %s started at %s", runID, start.Format("2006-01-02 15:04:05"))

	res, err := run(cfg, m, runDir, runID, start)
	if err != nil {
		log.Fatalf("실행 실패: %v", err)
	}
	res.Elapsed = time.Since(start)

	fmt.Println(renderSummary(res))

	if cfg.OpenOutput {
		openFolder(runDir)
	}
}

// openFolder 는 OS 기본 파일 관리자로 출력 폴더를 엽니다.
func openFolder(path string) {
	var err error
	switch runtime.GOOS {
	case "windows":
		err = exec.Command("explorer", path).Start()
	case "darwin":
		err = exec.Command("open", path).Start()
	default:
		err = exec.Command("xdg-open", path).Start()
	}
	if err != nil {
		log.Printf("failed to open output folder: %v", err)
	}
}
