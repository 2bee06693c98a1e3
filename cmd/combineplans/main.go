package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

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

func main() {
	var (
		asSrc      = flag.String("as", "", "AS plan table (.xlsx/.csv path or URL)")
		bsSrc      = flag.String("bs", "", "BS plan table (.xlsx/.csv path or URL)")
		equivSrc   = flag.String("equiv", "", "course equivalency table (.xlsx/.csv path or URL)")
		equivSheet = flag.String("equiv-sheet", "", "equivalency sheet name (blank = first sheet)")
		outPath    = flag.String("out", "", "output workbook path (blank = derived from input filenames)")
		uploadSFTP = flag.Bool("sftp", false, "upload the generated workbook via SFTP")
	)
	flag.Parse()

	if err := loader.RequireInputs(*asSrc, *bsSrc, *equivSrc); err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	cfg := config.Load()
	client := fetch.NewClient(cfg.FetchTimeout)

	asTable, err := client.Table(ctx, *asSrc, "")
	if err != nil {
		log.Fatal(err)
	}
	bsTable, err := client.Table(ctx, *bsSrc, "")
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
	bsCourses, bsDropped, err := loader.LoadBS(bsTable)
	if err != nil {
		log.Fatal(err)
	}
	entries, eqDropped, err := loader.LoadEquiv(equivTable)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("loaded as=%d bs=%d equiv=%d (dropped rows: as=%d bs=%d equiv=%d)",
		len(asCourses), len(bsCourses), len(entries), asDropped, bsDropped, eqDropped)

	rows := reconcile.Combine(asCourses, bsCourses, match.Build(entries))

	out := *outPath
	if out == "" {
		out = naming.CombinedPlanFileName(*asSrc, *bsSrc)
	}
	if dir := filepath.Dir(out); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatal(err)
		}
	}

	if err := export.WriteCombinedXLSX(out, rows, cfg.MaxColumnWidth); err != nil {
		log.Fatal(err)
	}

	var transferred, notTransferred, remaining int
	for _, r := range rows {
		switch r.Status {
		case domain.StatusTransferred:
			transferred++
		case domain.StatusNotTransferred:
			notTransferred++
		case domain.StatusToComplete:
			remaining++
		}
	}
	log.Printf("wrote %s (transferred=%d, not transferred=%d, to complete at BS=%d)",
		out, transferred, notTransferred, remaining)

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

		if err := sftpclient.UploadFiles(upCtx, upCfg, []string{out}); err != nil {
			log.Fatal(err)
		}
		log.Printf("uploaded to sftp://%s:%d%s/%s", upCfg.Host, upCfg.Port, upCfg.RemoteDir, filepath.Base(out))
	}
}
