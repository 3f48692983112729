package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/gen2brain/beeep"
	. "github.com/storozhukBM/build"
)

const coverageName = `coverage.out`
const binDirName = `bin`
const linterName = `golangci-lint`
const linterVersion = `v1.23.3`
const sceneExample = `./scene/internal/testdata/basic.yaml`

var parallelism = strconv.Itoa(runtime.NumCPU() * 4)

var b = NewBuild(BuildOptions{})
var commands = []Command{
	{`build`, b.RunCmd(Go, `build`, `./...`)},
	{`vet`, b.RunCmd(Go, `vet`, `./...`)},

	{`clean`, clean},
	{`cleanAll`, func() { clean(); cleanExecutables() }},
	{`test`, func() { testLib(); testScene(); notify(`tests finished`) }},
	{`testLib`, testLib},
	{`testScene`, testScene},
	{`testRace`, b.RunCmd(Go, `test`, `-race`, `./...`)},

	{`scene`, b.RunCmd(Go, `run`, `./scene`, `-config`, sceneExample, `-stats`)},
	{`example`, b.RunCmd(Go, `run`, `./example`)},

	{`lint`, cilint},

	{`coverage`, func() {
		clean()
		b.Run(
			Go, `test`, `-coverpkg=./...`, `-coverprofile=`+coverageName,
			`./lib/...`,
		)
		b.Run(Go, `tool`, `cover`, `-html=`+coverageName)
	}},
}

func testLib() {
	defer forceClean()
	b.Run(Go, `test`, `-parallel`, parallelism, `./lib/...`)
}

func testScene() {
	defer forceClean()
	b.Run(Go, `test`, `-parallel`, parallelism, `./scene/...`)
}

func clean() {
	b.Once(`cleanOnce`, func() { forceClean() })
}

func forceClean() {
	b.Run(Go, `clean`, `./...`)
	b.Run(`rm`, `-f`, coverageName)
	b.Run(`rm`, `-f`, `./example/example`, `./scene/scene`)
}

func cleanExecutables() {
	b.Run(`rm`, `-rf`, binDirName)
}

func cilint() {
	executable, downloadErr := DownloadExecutable(DownloadExecutableOptions{
		ExecutableName:           linterName,
		Version:                  linterVersion,
		FileNameTemplate:         `golangci-lint-{version}-{os}-{arch}`,
		ReleaseBinaryUrlTemplate: `https://github.com/golangci/golangci-lint/releases/download/v{version}/{fileName}.{osArchiveType}`,
		BinaryPathInsideTemplate: `{fileName}/{executableName}{executableExtension}`,
		DestinationDirectory:     filepath.Join(binDirName, linterVersion),
		InfoPrinter:              func(s string) { b.Info(s) },
	})
	if downloadErr != nil {
		b.AddError(fmt.Errorf("can't download linter: %v", downloadErr))
		return
	}
	b.Run(executable, `-j`, parallelism, `run`)
	notify(`lint finished`)
}

func notify(message string) {
	if os.Getenv(`CI`) != `` {
		return
	}
	notifyErr := beeep.Notify(`figures`, message, ``)
	if notifyErr != nil {
		b.Info(fmt.Sprintf("can't send notification: %v", notifyErr))
	}
}

func main() {
	b.Register(commands)
	b.BuildFromOsArgs()
}
