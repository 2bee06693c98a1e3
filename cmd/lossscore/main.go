package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"transfer-pathways/internal/concurrency"
	"transfer-pathways/internal/config"
	"transfer-pathways/internal/domain"
	"transfer-pathways/internal/export"
	"transfer-pathways/internal/fetch"
	"transfer-pathways/internal/loader"
	"transfer-pathways/internal/match"
	"transfer-pathways/internal/naming"
	"transfer-pathways/internal/reconcile"
	"transfer-pathways/internal/sftpclient"
)

// bsResult is one scored AS/BS pair plus the files it produced.
type bsResult struct {
	source  string
	summary domain.LossSummary
	files   []string
}

func main() {
	var (
		asSrc      = flag.String("as", "", "AS plan table (.xlsx/.csv path or URL)")
		equivSrc   = flag.String("equiv", "", "course equivalency table (.xlsx/.csv path or URL)")
		equivSheet = flag.String("equiv-sheet", "", "equivalency sheet name (blank = first sheet)")
		outDir     = flag.String("out-dir", ".", "directory for generated CSV files")
		workers    = flag.Int("workers", 4, "max BS plans scored in parallel")
		uploadSFTP = flag.Bool("sftp", false, "upload the generated CSVs via SFTP")
	)
	flag.Parse()

	bsSrcs := flag.Args()
	firstBS := ""
	if len(bsSrcs) > 0 {
		firstBS = bsSrcs[0]
	}
	if err := loader.RequireInputs(*asSrc, firstBS, *equivSrc); err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	cfg := config.Load()
	client := fetch.NewClient(cfg.FetchTimeout)

	asTable, err := client.Table(ctx, *asSrc, "")
	if err != nil {
		log.Fatal(err)
	}
	equivTable, err := client.Table(ctx, *equivSrc, *equivSheet)
	if err != nil {
		log.Fatal(err)
	}

	asCourses, asDropped, err := loader.LoadAS(asTable)
	if err != nil {
		log.Fatal(err)
	}
	entries, eqDropped, err := loader.LoadEquiv(equivTable)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("loaded as=%d equiv=%d (dropped rows: as=%d equiv=%d)", len(asCourses), len(entries), asDropped, eqDropped)

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatal(err)
	}

	asNormPath := filepath.Join(*outDir, "as_normalized.csv")
	if err := writeCSVFile(asNormPath, func(f *os.File) error {
		return export.WriteASTableCSV(f, asCourses)
	}); err != nil {
		log.Fatal(err)
	}

	eqMap := match.Build(entries)

	results, errs := concurrency.Map(ctx, bsSrcs, *workers, func(ctx context.Context, i int, bsSrc string) (bsResult, error) {
		return scoreBSPlan(ctx, client, *outDir, asCourses, eqMap, bsSrc)
	})

	var generated []string
	generated = append(generated, asNormPath)
	failed := 0
	for i, err := range errs {
		if err != nil {
			failed++
			log.Printf("WARN: %s failed: %v", bsSrcs[i], err)
			continue
		}
		r := results[i]
		generated = append(generated, r.files...)
		log.Printf("%s: total=%s matched=%s lost=%s loss_score=%v",
			r.source,
			fmt.Sprint(r.summary.TotalCredits),
			fmt.Sprint(r.summary.MatchedCredits),
			fmt.Sprint(r.summary.LostCredits),
			r.summary.LossScore)
	}
	if failed == len(bsSrcs) {
		log.Fatal("all BS plans failed to score")
	}

	if *uploadSFTP {
		upCfg := sftpclient.Config{
			Host:                  cfg.SFTPHost,
			Port:                  cfg.SFTPPort,
			User:                  cfg.SFTPUser,
			Pass:                  cfg.SFTPPass,
			RemoteDir:             cfg.SFTPDir,
			InsecureIgnoreHostKey: cfg.SFTPInsecureIgnoreHostKey,
		}

		upCtx, upCancel := context.WithTimeout(ctx, 5*time.Minute)
		defer upCancel()

		if err := sftpclient.UploadFiles(upCtx, upCfg, generated); err != nil {
			log.Fatal(err)
		}
		log.Printf("uploaded %d files to sftp://%s:%d%s", len(generated), upCfg.Host, upCfg.Port, upCfg.RemoteDir)
	}
}

// scoreBSPlan loads one BS table, scores the AS plan against it and writes
// the summary, unmatched and normalized-BS CSVs.
func scoreBSPlan(
	ctx context.Context,
	client *fetch.Client,
	outDir string,
	asCourses []domain.ASCourse,
	eqMap match.EquivalencyMap,
	bsSrc string,
) (bsResult, error) {
	bsTable, err := client.Table(ctx, bsSrc, "")
	if err != nil {
		return bsResult{}, err
	}
	bsCourses, bsDropped, err := loader.LoadBS(bsTable)
	if err != nil {
		return bsResult{}, err
	}
	if bsDropped > 0 {
		log.Printf("%s: dropped %d BS rows", bsSrc, bsDropped)
	}

	summary, unmatched := reconcile.Loss(asCourses, bsCourses, eqMap)

	inst, plan := naming.InferInstPlan(bsSrc)
	prefix := fmt.Sprintf("loss_%s_%s", inst, plan)

	files := []string{
		filepath.Join(outDir, prefix+"_summary.csv"),
		filepath.Join(outDir, prefix+"_unmatched_courses.csv"),
		filepath.Join(outDir, prefix+"_bs_normalized.csv"),
	}
	writers := []func(*os.File) error{
		func(f *os.File) error { return export.WriteLossSummaryCSV(f, summary) },
		func(f *os.File) error { return export.WriteUnmatchedCSV(f, unmatched) },
		func(f *os.File) error { return export.WriteBSTableCSV(f, bsCourses) },
	}
	for i, path := range files {
		if err := writeCSVFile(path, writers[i]); err != nil {
			return bsResult{}, err
		}
	}

	return bsResult{source: bsSrc, summary: summary, files: files}, nil
}

func writeCSVFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
