package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/subcommands"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"

	"github.com/tie/internal/renameio"

	"github.com/mcdeploy/mcdeploy"
	"github.com/mcdeploy/mcdeploy/pack/jsonspec"
)

type BootstrapCommand struct {
	CursePath  string
	OutputPath string
}

func (*BootstrapCommand) Name() string     { return "bootstrap" }
func (*BootstrapCommand) Synopsis() string { return "migrate a CurseForge modpack" }
func (*BootstrapCommand) Usage() string {
	return `Usage: mcdeploy bootstrap [-o base.pack] [-curse manifest.json]

	Converts an existing CurseForge modpack manifest into a .pack
	manifest ready for mcdeploy install.

Flags:
`
}

func (cmd *BootstrapCommand) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&cmd.CursePath, "curse", "manifest.json", "curse manifest path")
	fs.StringVar(&cmd.OutputPath, "o", defaultManifest, "output manifest path")
}

func (cmd *BootstrapCommand) Execute(ctx context.Context, fs *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	fpath := cmd.CursePath
	f, err := os.Open(fpath)
	if err != nil {
		log.Printf("open %q: %+v", fpath, err)
		return subcommands.ExitFailure
	}
	defer func() {
		err := f.Close()
		if err != nil {
			log.Printf("close %q: %+v", fpath, err)
		}
	}()

	var cm jsonspec.Manifest
	if err := json.NewDecoder(f).Decode(&cm); err != nil {
		log.Printf("decode %q: %+v", fpath, err)
		return subcommands.ExitFailure
	}

	conf := hclwrite.NewEmptyFile()
	body := conf.Body()

	packBlock := body.AppendNewBlock("pack", nil)
	pb := packBlock.Body()
	if cm.Name != "" {
		pb.SetAttributeValue("name", cty.StringVal(cm.Name))
	}
	pb.SetAttributeValue("format", cty.NumberIntVal(1))

	for _, cf := range cm.Files {
		body.AppendNewline()
		block := body.AppendNewBlock("mod", nil)
		mb := block.Body()
		name := fmt.Sprintf("%d-%d", cf.ProjectID, cf.FileID)
		mb.SetAttributeValue("name", cty.StringVal(name))
		mb.SetAttributeValue("type", cty.StringVal(mcdeploy.TypeCurse))
		mb.SetAttributeValue("projectID", cty.NumberIntVal(int64(cf.ProjectID)))
		mb.SetAttributeValue("fileID", cty.NumberIntVal(int64(cf.FileID)))
	}

	data := conf.Bytes()
	if err := renameio.WriteFile(cmd.OutputPath, data, 0644); err != nil {
		log.Printf("write %q: %+v", cmd.OutputPath, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
