package command

import (
	"github.com/urfave/cli/v2"
)

// ScanCommand returns the scan command.
func ScanCommand() *cli.Command {
	return &cli.Command{
		Name:      "scan",
		Usage:     "Report the public key and payload found in each post",
		ArgsUsage: "[text...]",
		Flags: []cli.Flag{
			fileFlag(),
			&cli.BoolFlag{
				Name:  "fail-empty",
				Usage: "Exit with status 1 when no post contains anything",
			},
		},
		Action: scanPosts,
	}
}

func scanPosts(c *cli.Context) error {
	rt, err := getRuntime(c)
	if err != nil {
		return err
	}
	posts, err := readPosts(c, rt)
	if err != nil {
		return err
	}

	reports := make(reportList, 0, len(posts))
	found := false
	for _, p := range posts {
		report, err := rt.svc.Scan(c.Context, p.source, p.text)
		if err != nil {
			return err
		}
		found = found || report.Found()
		reports = append(reports, report)
	}

	if err := rt.print(reports); err != nil {
		return err
	}
	if !found && c.Bool("fail-empty") {
		return notFound("public key or payload")
	}
	return nil
}
