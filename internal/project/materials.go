package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/mariosromano/ribmaker/internal/model"
)

// DefaultMaterialsPath returns the default file path for the material
// library, ~/.ribmaker/materials.json.
func DefaultMaterialsPath() string {
	return filepath.Join(DefaultConfigDir(), "materials.json")
}

// SaveMaterials writes the material library to the specified JSON file.
// It creates parent directories if they do not exist.
func SaveMaterials(path string, ml model.MaterialList) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(ml, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadMaterials reads the material library from the specified JSON file.
// If the file does not exist, it returns the default library and saves it.
func LoadMaterials(path string) (model.MaterialList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			ml := model.DefaultMaterials()
			if saveErr := SaveMaterials(path, ml); saveErr != nil {
				return ml, saveErr
			}
			return ml, nil
		}
		return model.MaterialList{}, err
	}
	var ml model.MaterialList
	if err := json.Unmarshal(data, &ml); err != nil {
		return model.MaterialList{}, err
	}
	return ml, nil
}

// ImportMaterials merges a material library from a user-specified JSON file
// into the existing one. Duplicate IDs are skipped.
func ImportMaterials(path string, existing model.MaterialList) (model.MaterialList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return existing, err
	}
	var imported model.MaterialList
	if err := json.Unmarshal(data, &imported); err != nil {
		return existing, err
	}

	ids := make(map[string]bool, len(existing.Materials))
	for _, m := range existing.Materials {
		ids[m.ID] = true
	}
	for _, m := range imported.Materials {
		if !ids[m.ID] {
			existing.Materials = append(existing.Materials, m)
			ids[m.ID] = true
		}
	}
	return existing, nil
}
