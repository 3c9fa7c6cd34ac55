package packlist

import (
	"packlist/pkg/packlist/models"
	"packlist/pkg/packlist/output"
	"packlist/pkg/packlist/pipeline"
	"packlist/pkg/packlist/roles"
)

// InferDefaults proposes a header for each semantic role from the table's
// header list. The result only pre-populates a confirmation step; the
// caller supplies the confirmed RoleMapping to Generate.
func InferDefaults(headers []string) roles.Defaults {
	return roles.InferDefaults(headers)
}

// InferDefaultsWith is InferDefaults with a caller-supplied phrase table.
func InferDefaultsWith(headers []string, opts Options) roles.Defaults {
	return roles.InferDefaultsWith(headers, opts.phrases())
}

// Build runs the aggregation and assembly stages and returns the
// structured workbook, including any sheet-name collisions that were
// resolved. The mapping is re-validated; violations fail with an error
// satisfying errors.Is(err, ErrInvalidMapping).
func Build(table *models.RawTable, mapping models.RoleMapping, opts Options) (*models.Workbook, error) {
	logger := opts.logger()
	summary, err := pipeline.Aggregate(table, mapping, logger)
	if err != nil {
		return nil, err
	}
	return pipeline.Assemble(summary, logger), nil
}

// Generate produces the packing-list workbook as in-memory xlsx bytes.
// Structurally valid input always generates: abnormal rows degrade per the
// cleaning and coercion rules, and an empty table yields a workbook with
// just an empty INDEX sheet.
func Generate(table *models.RawTable, mapping models.RoleMapping, opts Options) ([]byte, error) {
	wb, err := Build(table, mapping, opts)
	if err != nil {
		return nil, err
	}
	return output.Write(wb)
}
