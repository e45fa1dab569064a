package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepRequest_Validate_Valid(t *testing.T) {
	req := PrepRequest{
		CompanyName: "Google",
		JobRole:     "Data Scientist",
	}
	assert.NoError(t, req.Validate())
}

func TestPrepRequest_Validate_MissingCompany(t *testing.T) {
	req := PrepRequest{
		JobRole: "Data Scientist",
	}
	require.Error(t, req.Validate())
}

func TestPrepRequest_Validate_MissingRole(t *testing.T) {
	req := PrepRequest{
		CompanyName: "Google",
	}
	require.Error(t, req.Validate())
}

func TestPrepRequest_Validate_BothMissing(t *testing.T) {
	req := PrepRequest{}
	require.Error(t, req.Validate())
}

func TestPrepRequest_Normalize_TrimsWhitespace(t *testing.T) {
	req := PrepRequest{
		CompanyName: "  Acme  ",
		JobRole:     "\tEngineer\n",
	}
	req.Normalize()
	assert.Equal(t, "Acme", req.CompanyName)
	assert.Equal(t, "Engineer", req.JobRole)
}

func TestPrepRequest_Normalize_WhitespaceOnlyBecomesInvalid(t *testing.T) {
	req := PrepRequest{
		CompanyName: "   ",
		JobRole:     "Engineer",
	}
	req.Normalize()
	require.Error(t, req.Validate())
}

func TestPrepRequest_ArtifactName(t *testing.T) {
	req := PrepRequest{
		CompanyName: "Acme",
		JobRole:     "Engineer",
	}
	assert.Equal(t, "Acme_Engineer_Interview_Guide.txt", req.ArtifactName())
}

func TestPrepRequest_ArtifactName_NotSanitized(t *testing.T) {
	// Strings are used verbatim, including spaces and punctuation.
	req := PrepRequest{
		CompanyName: "Procter & Gamble",
		JobRole:     "Sr. Engineer",
	}
	assert.Equal(t, "Procter & Gamble_Sr. Engineer_Interview_Guide.txt", req.ArtifactName())
}
