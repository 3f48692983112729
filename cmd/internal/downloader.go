package main

import (
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/mholt/archiver/v3"
)

type DownloadExecutableOptions struct {
	ExecutableName string
	// Version with or without leading `v`; {version} is always substituted without it
	Version string

	// Example: "golangci-lint-{version}-{os}-{arch}"
	FileNameTemplate string
	// Example: "https://github.com/golangci/golangci-lint/releases/download/v{version}/{fileName}.{osArchiveType}"
	ReleaseBinaryUrlTemplate string
	// Example: "{fileName}/{executableName}{executableExtension}"
	BinaryPathInsideTemplate string

	DestinationDirectory string

	InfoPrinter func(string)
}

// DownloadExecutable downloads release archive, unpacks it and copies the executable
// into DestinationDirectory. Already downloaded executable is reused.
func DownloadExecutable(opts DownloadExecutableOptions) (string, error) {
	if opts.ExecutableName == "" {
		return "", fmt.Errorf("executableName can't be empty")
	}
	if opts.Version == "" {
		return "", fmt.Errorf("version can't be empty")
	}
	if opts.InfoPrinter == nil {
		opts.InfoPrinter = func(string) {}
	}
	destination := filepath.Join(opts.DestinationDirectory, opts.ExecutableName+osExecutableType())
	if _, err := os.Stat(destination); err == nil {
		opts.InfoPrinter("skip download. Use file from cache")
		return destination, nil
	}

	replacer := templateReplacer(opts)
	fileName := replacer.Replace(opts.FileNameTemplate)
	replacer = templateReplacer(opts, "{fileName}", fileName)
	url := replacer.Replace(opts.ReleaseBinaryUrlTemplate)

	archivePath, downloadErr := downloadFile(opts, url)
	if downloadErr != nil {
		return "", downloadErr
	}
	dirPath := filepath.Join(os.TempDir(), strconv.FormatInt(time.Now().UnixNano(), 10))
	if mkErr := os.Mkdir(dirPath, os.ModePerm); mkErr != nil {
		return "", mkErr
	}
	if unarchiveErr := archiver.Unarchive(archivePath, dirPath); unarchiveErr != nil {
		return "", fmt.Errorf("can't decompress file. File: %v; Error: %v", archivePath, unarchiveErr)
	}
	binaryPath := filepath.Join(dirPath, replacer.Replace(opts.BinaryPathInsideTemplate))
	if copyErr := copyExecutable(binaryPath, destination); copyErr != nil {
		return "", copyErr
	}
	return destination, nil
}

func downloadFile(opts DownloadExecutableOptions, url string) (string, error) {
	opts.InfoPrinter("going to download file from: " + url)
	resp, getErr := http.Get(url)
	if getErr != nil {
		return "", fmt.Errorf("can't get file. URL: `%v`; Error: %v", url, getErr)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("can't get file. URL: `%v`; Code: %v", url, resp.Status)
	}

	destFile, tempFileErr := ioutil.TempFile("", "*-"+filepath.Base(url))
	if tempFileErr != nil {
		return "", fmt.Errorf("can't store file. URL: `%v`; Error: %v", url, tempFileErr)
	}
	defer destFile.Close()

	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()
	runDownloadProgressReporter(ctx, opts, destFile.Name(), resp.ContentLength)

	if _, copyErr := io.Copy(destFile, resp.Body); copyErr != nil {
		return "", fmt.Errorf("can't download file. URL: `%v`; Error: %v", url, copyErr)
	}
	return destFile.Name(), nil
}

func runDownloadProgressReporter(ctx context.Context, opts DownloadExecutableOptions, filePath string, expectedFileSize int64) {
	if expectedFileSize < 100 {
		return
	}
	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				stat, statErr := os.Stat(filePath)
				if statErr != nil {
					continue
				}
				opts.InfoPrinter(fmt.Sprintf("file download: %v%%", stat.Size()/(expectedFileSize/100)))
			case <-ctx.Done():
				return
			}
		}
	}()
}

// We could use os.Rename, but it doesn't work across disks on Windows, so the file is copied by hand.
func copyExecutable(source string, destination string) error {
	sourceFile, sourceErr := os.Open(source)
	if sourceErr != nil {
		return fmt.Errorf("can't open source file %v: %v", source, sourceErr)
	}
	defer sourceFile.Close()

	if mkdirErr := os.MkdirAll(filepath.Dir(destination), os.ModePerm); mkdirErr != nil {
		return fmt.Errorf("can't create dir: %v", mkdirErr)
	}
	destinationFile, destinationErr := os.OpenFile(destination, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0777)
	if destinationErr != nil {
		return fmt.Errorf("can't create destination file %v: %v", destination, destinationErr)
	}
	defer destinationFile.Close()

	if _, copyErr := io.Copy(destinationFile, sourceFile); copyErr != nil {
		return fmt.Errorf("can't copy file from %v to %v: %v", source, destination, copyErr)
	}
	return nil
}

func templateReplacer(opts DownloadExecutableOptions, extra ...string) *strings.Replacer {
	pairs := []string{
		"{os}", runtime.GOOS,
		"{arch}", runtime.GOARCH,
		"{version}", strings.TrimPrefix(opts.Version, "v"),
		"{osArchiveType}", osArchiveType(),
		"{executableName}", opts.ExecutableName,
		"{executableExtension}", osExecutableType(),
	}
	return strings.NewReplacer(append(pairs, extra...)...)
}

func osArchiveType() string {
	if runtime.GOOS == "windows" {
		return "zip"
	}
	return "tar.gz"
}

func osExecutableType() string {
	if runtime.GOOS == "windows" {
		return ".exe"
	}
	return ""
}
