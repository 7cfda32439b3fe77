package service

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tieubaoca/policy-insights-be/types"
	"github.com/tieubaoca/policy-insights-be/utils"
)

// PolicyService manages the directory of stored policy PDFs.
type PolicyService struct {
	policyDir  string
	pdfService *PDFService
}

func NewPolicyService(policyDir string, pdfService *PDFService) *PolicyService {
	if err := os.MkdirAll(policyDir, 0755); err != nil {
		panic(err)
	}
	return &PolicyService{
		policyDir:  policyDir,
		pdfService: pdfService,
	}
}

// List enumerates the .pdf files in the policy directory, sorted by
// filename.
func (s *PolicyService) List() ([]types.Policy, error) {
	entries, err := os.ReadDir(s.policyDir)
	if err != nil {
		return nil, fmt.Errorf("reading policy directory: %w", err)
	}

	policies := make([]types.Policy, 0)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name()), ".pdf") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		policies = append(policies, types.Policy{
			FileName:    entry.Name(),
			DisplayName: utils.DisplayName(entry.Name()),
			Size:        info.Size(),
		})
	}
	sort.Slice(policies, func(i, j int) bool {
		return policies[i].FileName < policies[j].FileName
	})
	return policies, nil
}

// Path resolves a policy filename inside the policy directory. Filenames
// with path separators are rejected so callers cannot escape the directory.
func (s *PolicyService) Path(fileName string) (string, error) {
	if fileName == "" || fileName != filepath.Base(fileName) {
		return "", fmt.Errorf("invalid policy name: %q", fileName)
	}
	path := filepath.Join(s.policyDir, fileName)
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("policy not found: %s", fileName)
	}
	return path, nil
}

// LoadText extracts the plain text of a stored policy. The text is
// recomputed on every call, nothing is cached.
func (s *PolicyService) LoadText(fileName string) (string, error) {
	path, err := s.Path(fileName)
	if err != nil {
		return "", err
	}
	return s.pdfService.ExtractFile(path)
}

// Save persists an uploaded policy PDF under a timestamped filename and
// returns the stored name.
func (s *PolicyService) Save(fileName string, data []byte) (string, error) {
	if strings.ToLower(filepath.Ext(fileName)) != ".pdf" {
		return "", fmt.Errorf("unsupported file type: %s", filepath.Ext(fileName))
	}
	return utils.WriteFileWithTimestamp(s.policyDir, fileName, data)
}
