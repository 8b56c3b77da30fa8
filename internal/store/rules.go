package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"mbeck/finance-analyzer/internal/fixedcost"
	"mbeck/finance-analyzer/internal/logging"
	"mbeck/finance-analyzer/internal/models"
)

// RulesStore loads optional keyword/threshold overrides for the classifiers.
// Missing files are not an error: the built-in defaults apply.
type RulesStore struct {
	CategoriesFile string
	FixedCostsFile string
	logger         logging.Logger
}

// NewRulesStore creates a store reading the given override files. Empty file
// names fall back to the standard names resolved in the usual locations.
func NewRulesStore(categoriesFile, fixedCostsFile string, logger logging.Logger) *RulesStore {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &RulesStore{
		CategoriesFile: categoriesFile,
		FixedCostsFile: fixedCostsFile,
		logger:         logger,
	}
}

// findConfigFile looks for a configuration file in the standard locations.
func findConfigFile(filename string) (string, bool) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, true
		}
		return "", false
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	if home, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(home, ".config", "finance-analyzer", filename))
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, true
		}
	}
	return "", false
}

// LoadCategories loads the spending-category keyword list, preserving file
// order. A missing file yields nil so the caller uses the defaults.
func (s *RulesStore) LoadCategories() ([]models.CategoryConfig, error) {
	filename := s.CategoriesFile
	if filename == "" {
		filename = "categories.yaml"
	}

	path, found := findConfigFile(filename)
	if !found {
		s.logger.WithField("file", filename).Debug("No category override file, using built-in list")
		return nil, nil
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path resolved from known config locations
	if err != nil {
		return nil, fmt.Errorf("error reading categories file: %w", err)
	}

	var categories []models.CategoryConfig
	if err := yaml.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("error parsing categories file %s: %w", path, err)
	}

	s.logger.WithFields(
		logging.Field{Key: "file", Value: path},
		logging.Field{Key: "count", Value: len(categories)},
	).Info("Loaded category overrides")
	return categories, nil
}

// fixedCostFile mirrors the fixed-cost YAML layout. Amounts are plain
// numbers in the file and converted to decimals on load.
type fixedCostFile struct {
	Rules []struct {
		Category     string   `yaml:"category"`
		Keywords     []string `yaml:"keywords"`
		MaxPlausible float64  `yaml:"max_plausible"`
	} `yaml:"rules"`
	Exclusions         []string `yaml:"exclusions"`
	FixedCostThreshold float64  `yaml:"fixed_cost_threshold"`
}

// LoadFixedCostConfig loads the fixed-cost rule overrides. A missing file
// yields a zero Config so the caller uses the defaults.
func (s *RulesStore) LoadFixedCostConfig() (fixedcost.Config, error) {
	filename := s.FixedCostsFile
	if filename == "" {
		filename = "fixed_costs.yaml"
	}

	path, found := findConfigFile(filename)
	if !found {
		s.logger.WithField("file", filename).Debug("No fixed-cost override file, using built-in rules")
		return fixedcost.Config{}, nil
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path resolved from known config locations
	if err != nil {
		return fixedcost.Config{}, fmt.Errorf("error reading fixed-cost file: %w", err)
	}

	var file fixedCostFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fixedcost.Config{}, fmt.Errorf("error parsing fixed-cost file %s: %w", path, err)
	}

	config := fixedcost.Config{
		Exclusions:         file.Exclusions,
		FixedCostThreshold: file.FixedCostThreshold,
	}
	for _, rule := range file.Rules {
		config.Rules = append(config.Rules, fixedcost.CategoryRule{
			Category:     models.FixedCostCategory(rule.Category),
			Keywords:     rule.Keywords,
			MaxPlausible: decimal.NewFromFloat(rule.MaxPlausible),
		})
	}

	s.logger.WithFields(
		logging.Field{Key: "file", Value: path},
		logging.Field{Key: "rules", Value: len(config.Rules)},
	).Info("Loaded fixed-cost overrides")
	return config, nil
}
