package menu

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/coryzibell/speedrun/internal/output"
	"github.com/coryzibell/speedrun/internal/servers"
	"github.com/coryzibell/speedrun/internal/utils"
)

// Selection is the outcome of one menu round.
type Selection struct {
	Name     string
	URL      string
	SavePath string
	Quit     bool
}

// Show clears the screen, prints the banner and server list, and reads
// one selection from in. Returns Quit on EOF so a closed stdin exits the
// interactive loop cleanly.
func Show(in io.Reader, list []servers.Metadata, banner string) (Selection, error) {
	fmt.Print("\033[2J\033[1;1H")
	fmt.Println(banner)

	for i, server := range list {
		fmt.Printf("%s %s\n",
			output.FInfo(fmt.Sprintf("%2d)", i+1)),
			fmt.Sprintf("%s %s %s", server.Name, output.StyleSymbols["arrow"], output.FDebug(server.URL)))
	}
	fmt.Printf("%s Custom URL\n", output.FInfo(" c)"))
	fmt.Printf("%s Quit\n", output.FInfo(" q)"))

	reader := bufio.NewScanner(in)
	for {
		fmt.Print("\nSelect a file: ")
		if !reader.Scan() {
			return Selection{Quit: true}, reader.Err()
		}
		choice := strings.TrimSpace(reader.Text())
		switch {
		case choice == "q" || choice == "quit":
			return Selection{Quit: true}, nil
		case choice == "c" || choice == "custom":
			return customSelection(reader)
		default:
			index, err := strconv.Atoi(choice)
			if err != nil || index < 1 || index > len(list) {
				output.PrintWarning("Invalid selection")
				continue
			}
			server := list[index-1]
			return Selection{Name: server.Name, URL: server.URL}, nil
		}
	}
}

func customSelection(reader *bufio.Scanner) (Selection, error) {
	fmt.Print("Enter URL: ")
	if !reader.Scan() {
		return Selection{Quit: true}, reader.Err()
	}
	url := utils.NormalizeURL(reader.Text())
	if url == "http://" {
		return Selection{Quit: true}, fmt.Errorf("empty URL")
	}

	fmt.Print("Save file to current folder? [y/N]: ")
	if !reader.Scan() {
		return Selection{Quit: true}, reader.Err()
	}
	savePath := ""
	if answer := strings.ToLower(strings.TrimSpace(reader.Text())); answer == "y" || answer == "yes" {
		suggested := utils.ExtractFilename(url)
		fmt.Printf("Enter filename [%s]: ", suggested)
		if !reader.Scan() {
			return Selection{Quit: true}, reader.Err()
		}
		savePath = strings.TrimSpace(reader.Text())
		if savePath == "" {
			savePath = suggested
		}
	}
	return Selection{Name: "Custom URL", URL: url, SavePath: savePath}, nil
}

// WaitForContinue blocks until the user presses Enter.
func WaitForContinue(in io.Reader) {
	fmt.Print(output.FDebug("Press Enter to continue..."))
	bufio.NewScanner(in).Scan()
}
