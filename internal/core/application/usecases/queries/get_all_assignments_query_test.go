package queries_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetAllAssignmentsQuery_Valid(t *testing.T) {
	query := queries.NewGetAllAssignmentsQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetAllAssignmentsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetAllAssignmentsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetAllAssignmentsQueryIsNotConstructed)
}
