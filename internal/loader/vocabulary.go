package loader

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/dictlint/pkg/vocab"
)

// LoadAbbreviationsCSV reads the NAME,ABBR abbreviation list.
func LoadAbbreviationsCSV(path string) ([]vocab.Entry, error) {
	rows, err := readCSV(path)
	if err != nil {
		return nil, fmt.Errorf("load abbreviations %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("load abbreviations %s: empty file", path)
	}

	nameIdx, abbrIdx := -1, -1
	for i, h := range rows[0] {
		switch strings.ToUpper(strings.TrimSpace(h)) {
		case "NAME":
			nameIdx = i
		case "ABBR":
			abbrIdx = i
		}
	}
	if nameIdx < 0 || abbrIdx < 0 {
		return nil, fmt.Errorf("load abbreviations %s: want NAME and ABBR columns", path)
	}

	var entries []vocab.Entry
	for line, row := range rows[1:] {
		if nameIdx >= len(row) || abbrIdx >= len(row) {
			return nil, fmt.Errorf("load abbreviations %s:%d: short row", path, line+2)
		}
		term := strings.TrimSpace(row[nameIdx])
		abbr := strings.TrimSpace(row[abbrIdx])
		if term == "" && abbr == "" {
			continue
		}
		entries = append(entries, vocab.Entry{Term: term, Abbreviation: abbr})
	}
	return entries, nil
}

// LoadClasswordsCSV reads the CLASS WORD list and attaches the built-in type
// compatibility of any code the default set knows. Codes outside the default
// set carry no type constraint.
func LoadClasswordsCSV(path string) ([]vocab.Classword, error) {
	rows, err := readCSV(path)
	if err != nil {
		return nil, fmt.Errorf("load classwords %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("load classwords %s: empty file", path)
	}

	codeIdx := -1
	for i, h := range rows[0] {
		if strings.ToUpper(strings.TrimSpace(h)) == "CLASS WORD" {
			codeIdx = i
		}
	}
	if codeIdx < 0 {
		return nil, fmt.Errorf("load classwords %s: want a CLASS WORD column", path)
	}

	defaults := make(map[string]vocab.Classword)
	for _, cw := range vocab.DefaultClasswords() {
		defaults[cw.Code] = cw
	}

	var classwords []vocab.Classword
	for _, row := range rows[1:] {
		if codeIdx >= len(row) {
			continue
		}
		code := strings.ToUpper(strings.TrimSpace(row[codeIdx]))
		if code == "" {
			continue
		}
		if known, ok := defaults[code]; ok {
			classwords = append(classwords, known)
			continue
		}
		classwords = append(classwords, vocab.Classword{Code: code})
	}
	return classwords, nil
}

// vocabularyYAML mirrors the combined vocabulary file.
type vocabularyYAML struct {
	Abbreviations []vocab.Entry     `yaml:"abbreviations"`
	Classwords    []vocab.Classword `yaml:"classwords"`
}

// LoadVocabularyYAML reads a combined abbreviations + classwords file.
func LoadVocabularyYAML(path string) ([]vocab.Entry, []vocab.Classword, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("load vocabulary %s: %w", path, err)
	}

	var doc vocabularyYAML
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("load vocabulary %s: invalid YAML: %w", path, err)
	}
	return doc.Abbreviations, doc.Classwords, nil
}

// LoadWordlist reads a newline word list for the spelling dictionary. Blank
// lines and # comments are skipped.
func LoadWordlist(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load wordlist %s: %w", path, err)
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("load wordlist %s: %w", path, err)
	}
	return words, nil
}

// readCSV slurps a small CSV file. Vocabulary files are a few hundred rows;
// streaming buys nothing.
func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	var rows [][]string
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}
