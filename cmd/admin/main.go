package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"resumebuilder/internal/config"
	"resumebuilder/internal/database"
	"resumebuilder/internal/repository"
	"resumebuilder/internal/resume"
)

const usage = `usage:
  admin templates seed --file catalog.yaml
  admin templates create --name NAME --html-file page.html [--css-file style.css] [--description TEXT] [--inactive]`

func main() {
	if len(os.Args) < 3 || os.Args[1] != "templates" {
		log.Fatal(usage)
	}

	cfg := config.MustLoad()
	db, err := database.InitDatabase(cfg.Database)
	if err != nil {
		log.Fatalf("init database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("migrate database: %v", err)
	}
	svc := resume.NewService(repository.New(db))

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	switch os.Args[2] {
	case "seed":
		err = seedTemplates(ctx, svc, os.Args[3:])
	case "create":
		err = createTemplate(ctx, svc, os.Args[3:])
	default:
		log.Fatal(usage)
	}
	if err != nil {
		log.Fatal(err)
	}
}

// seedTemplates 按名称去重：已启用的同名模板不会重复创建。
func seedTemplates(ctx context.Context, svc resume.Service, args []string) error {
	fs := flag.NewFlagSet("templates seed", flag.ExitOnError)
	file := fs.String("file", "", "模板目录 YAML 文件（必填）")
	_ = fs.Parse(args)

	if strings.TrimSpace(*file) == "" {
		return fmt.Errorf("missing required flag: --file")
	}
	f, err := os.Open(*file)
	if err != nil {
		return fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	inputs, err := loadCatalog(f, filepath.Dir(*file))
	if err != nil {
		return err
	}

	active, err := svc.ListActiveTemplates(ctx)
	if err != nil {
		return fmt.Errorf("list active templates: %w", err)
	}
	existing := make(map[string]struct{}, len(active))
	for _, tpl := range active {
		existing[tpl.Name] = struct{}{}
	}

	created := 0
	for _, in := range inputs {
		if _, ok := existing[in.Name]; ok {
			fmt.Printf("跳过已存在的模板: %s\n", in.Name)
			continue
		}
		tpl, err := svc.CreateTemplate(ctx, in)
		if err != nil {
			return fmt.Errorf("create template %q: %w", in.Name, err)
		}
		created++
		fmt.Printf("已创建模板 #%d: %s\n", tpl.ID, tpl.Name)
	}
	fmt.Printf("完成：新建 %d 个，跳过 %d 个\n", created, len(inputs)-created)
	return nil
}

func createTemplate(ctx context.Context, svc resume.Service, args []string) error {
	fs := flag.NewFlagSet("templates create", flag.ExitOnError)
	var (
		name        = fs.String("name", "", "模板名称（必填）")
		htmlFile    = fs.String("html-file", "", "HTML 模板文件（必填）")
		cssFile     = fs.String("css-file", "", "CSS 文件（可选）")
		description = fs.String("description", "", "模板描述（可选）")
		inactive    = fs.Bool("inactive", false, "创建为停用状态")
	)
	_ = fs.Parse(args)

	html, err := readOptionalFile(*htmlFile)
	if err != nil {
		return err
	}
	css, err := readOptionalFile(*cssFile)
	if err != nil {
		return err
	}

	in := resume.CreateTemplateInput{
		Name:         strings.TrimSpace(*name),
		CSSStyles:    css,
		HTMLTemplate: html,
	}
	if d := strings.TrimSpace(*description); d != "" {
		in.Description = &d
	}
	if *inactive {
		active := false
		in.IsActive = &active
	}

	tpl, err := svc.CreateTemplate(ctx, in)
	if err != nil {
		return fmt.Errorf("create template: %w", err)
	}
	fmt.Printf("已创建模板 #%d: %s (active=%t)\n", tpl.ID, tpl.Name, tpl.IsActive)
	return nil
}

func readOptionalFile(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}
