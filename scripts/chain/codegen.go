package main

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"text/template"
)

type chain struct {
	Name      string
	ID        uint64
	Native    string
	Supported bool
}

func main() {
	// Open the input file and read its contents
	data, err := readCsvFile(filepath.Join("scripts", "chain", "chain_data.csv"))
	if err != nil {
		panic(fmt.Errorf("error reading CSV file: %v", err))
	}

	// Convert the CSV records to a list of chain objects
	chains, err := convertDataToChains(data)
	if err != nil {
		panic(fmt.Errorf("error converting CSV records: %v", err))
	}

	// Generate Go code from the chain objects using a template
	code, err := generateGoCode(filepath.Join("scripts", "chain", "chain_data.tmpl"), chains)
	if err != nil {
		panic(fmt.Errorf("error generating Go code: %v", err))
	}

	// Write the generated Go code to a file
	err = writeToFile("chain_data.go", code)
	if err != nil {
		panic(fmt.Errorf("error writing to file: %v", err))
	}
}

func readCsvFile(filename string) ([][]string, error) {
	in, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() { _ = in.Close() }()

	reader := csv.NewReader(in)
	_, err = reader.Read() // header
	if err != nil {
		return nil, err
	}
	return reader.ReadAll()
}

func convertDataToChains(data [][]string) ([]chain, error) {
	chains := []chain{}
	for _, rec := range data {
		id, err := strconv.ParseUint(rec[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("chain %v: %w", rec[0], err)
		}
		if id == 0 {
			return nil, fmt.Errorf("chain %v: zero chain id", rec[0])
		}
		supported, err := strconv.ParseBool(rec[3])
		if err != nil {
			return nil, fmt.Errorf("chain %v: %w", rec[0], err)
		}
		chains = append(chains, chain{
			Name:      rec[0],
			ID:        id,
			Native:    rec[2],
			Supported: supported,
		})
	}

	// Sort by chain id so that the generated tables are stable
	sort.Slice(chains, func(i, j int) bool {
		return chains[i].ID < chains[j].ID
	})
	return chains, nil
}

func generateGoCode(filename string, chains []chain) ([]byte, error) {
	tmpl, err := template.New(filepath.Base(filename)).ParseFiles(filename)
	if err != nil {
		return nil, err
	}

	var output bytes.Buffer
	err = tmpl.Execute(&output, chains)
	if err != nil {
		return nil, err
	}

	// Format the output as Go code
	return format.Source(output.Bytes())
}

func writeToFile(filename string, content []byte) error {
	out, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()
	writer := bufio.NewWriter(out)
	_, err = writer.Write(content)
	if err != nil {
		return err
	}
	return writer.Flush()
}
