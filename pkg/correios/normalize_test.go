package correios

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseResponse_Success verifies full normalization of a delivered shipment.
func TestParseResponse_Success(t *testing.T) {
	jsonContent := `{
    "objetos": [
        {
            "codObjeto": "AB123456789BR",
            "tipoPostal": {
                "categoria": "ENCOMENDA PAC",
                "descricao": "ETIQUETA LOGICA SE"
            },
            "eventos": [
                {
                    "codigo": "BDE",
                    "descricao": "Objeto entregue ao destinatário",
                    "dtHrCriado": "2023-11-02T16:23:05",
                    "unidade": {
                        "endereco": {"cidade": "sao paulo", "uf": "SP"},
                        "nome": "CDD VILA MARIANA",
                        "tipo": "Unidade de Distribuição"
                    }
                },
                {
                    "codigo": "OEC",
                    "descricao": "Objeto saiu para entrega ao destinatário",
                    "dtHrCriado": "2023-11-02T08:10:00",
                    "unidade": {
                        "endereco": {"cidade": "sao paulo", "uf": "SP"},
                        "tipo": "Unidade de Distribuição"
                    }
                },
                {
                    "codigo": "PO",
                    "descricao": "Objeto postado",
                    "dtHrCriado": "2023-10-30T11:05:44",
                    "unidade": {
                        "endereco": {"cidade": "curitiba", "uf": "PR"},
                        "tipo": "Agência dos Correios"
                    },
                    "unidadeDestino": {
                        "endereco": {"cidade": "sao paulo", "uf": "SP"},
                        "tipo": "Unidade de Tratamento"
                    }
                }
            ]
        }
    ]
}`
	var resp correiosResponse
	err := json.Unmarshal([]byte(jsonContent), &resp)
	require.NoError(t, err)

	tracking := parseResponse(resp, "AB123456789BR")

	assert.Equal(t, "AB123456789BR", tracking.Code)
	assert.False(t, tracking.IsInvalid)
	assert.True(t, tracking.IsDelivered)
	require.Len(t, tracking.Events, 3)

	newest := tracking.Events[0]
	require.NotNil(t, newest.Locality)
	assert.Equal(t, "Sao Paulo / SP", *newest.Locality)
	assert.Equal(t, "Unidade de Distribuição - Sao Paulo / SP", newest.Origin)
	assert.Equal(t, "Objeto entregue ao destinatário", newest.Status)
	assert.Nil(t, newest.Destination)

	oldest := tracking.Events[2]
	require.NotNil(t, oldest.Destination)
	assert.Equal(t, "Unidade de Tratamento - Sao Paulo / SP", *oldest.Destination)

	// Events arrive newest-first: posted is the last element, updated the first.
	posted, _ := time.Parse(eventTimeLayout, "2023-10-30T11:05:44")
	updated, _ := time.Parse(eventTimeLayout, "2023-11-02T16:23:05")
	require.NotNil(t, tracking.PostedAt)
	require.NotNil(t, tracking.UpdatedAt)
	assert.True(t, posted.Equal(*tracking.PostedAt))
	assert.True(t, updated.Equal(*tracking.UpdatedAt))

	require.NotNil(t, tracking.Category)
	assert.Equal(t, "Encomenda Pac", tracking.Category.Name)
	assert.Equal(t, "Etiqueta Logica SE", tracking.Category.Description)
}

// TestParseResponse_NotDelivered verifies the delivered flag stays false
// for in-transit statuses.
func TestParseResponse_NotDelivered(t *testing.T) {
	jsonContent := `{
    "objetos": [
        {
            "codObjeto": "AB123456789BR",
            "eventos": [
                {
                    "codigo": "OEC",
                    "descricao": "Objeto saiu para entrega ao destinatário",
                    "dtHrCriado": "2023-11-02T08:10:00",
                    "unidade": {
                        "endereco": {"cidade": "recife", "uf": "PE"},
                        "tipo": "Unidade de Distribuição"
                    }
                }
            ]
        }
    ]
}`
	var resp correiosResponse
	require.NoError(t, json.Unmarshal([]byte(jsonContent), &resp))

	tracking := parseResponse(resp, "AB123456789BR")

	assert.False(t, tracking.IsInvalid)
	assert.False(t, tracking.IsDelivered)
}

// TestParseResponse_MessageMeansNotFound verifies that an explicit carrier
// message wins over everything else in the payload.
func TestParseResponse_MessageMeansNotFound(t *testing.T) {
	jsonContent := `{
    "objetos": [
        {
            "codObjeto": "AB123456789BR",
            "mensagem": "Objeto não encontrado na base de dados dos Correios.",
            "tipoPostal": {"categoria": "SEDEX", "descricao": "Etiqueta Logica Sedex"}
        }
    ]
}`
	var resp correiosResponse
	require.NoError(t, json.Unmarshal([]byte(jsonContent), &resp))

	tracking := parseResponse(resp, "AB123456789BR")

	assert.True(t, tracking.IsInvalid)
	assert.Equal(t, ErrorNotFound, tracking.Error)
	assert.Nil(t, tracking.Category)
	assert.Empty(t, tracking.Events)
}

// TestParseResponse_MissingEvents verifies payloads without an events
// collection normalize to not_found.
func TestParseResponse_MissingEvents(t *testing.T) {
	jsonContent := `{"objetos": [{"codObjeto": "AB123456789BR"}]}`

	var resp correiosResponse
	require.NoError(t, json.Unmarshal([]byte(jsonContent), &resp))

	tracking := parseResponse(resp, "AB123456789BR")

	assert.True(t, tracking.IsInvalid)
	assert.Equal(t, ErrorNotFound, tracking.Error)
}

// TestParseResponse_EmptyEvents verifies a present-but-empty events array
// is treated the same as a missing one.
func TestParseResponse_EmptyEvents(t *testing.T) {
	jsonContent := `{"objetos": [{"codObjeto": "AB123456789BR", "eventos": []}]}`

	var resp correiosResponse
	require.NoError(t, json.Unmarshal([]byte(jsonContent), &resp))

	tracking := parseResponse(resp, "AB123456789BR")

	assert.True(t, tracking.IsInvalid)
	assert.Equal(t, ErrorNotFound, tracking.Error)
}

// TestParseResponse_EmptyObjects verifies an empty objetos array is
// treated as not_found rather than panicking.
func TestParseResponse_EmptyObjects(t *testing.T) {
	tracking := parseResponse(correiosResponse{}, "AB123456789BR")

	assert.True(t, tracking.IsInvalid)
	assert.Equal(t, ErrorNotFound, tracking.Error)
}

// TestLocationRules_Domestic verifies the domestic facility branch.
func TestLocationRules_Domestic(t *testing.T) {
	unit := correiosUnit{
		Address: correiosAddress{City: "sao paulo", UF: "SP"},
		Type:    "Unidade",
	}

	location := locationRules(unit)

	require.NotNil(t, location.locality)
	assert.Equal(t, "Sao Paulo / SP", *location.locality)
	assert.Equal(t, "Unidade - Sao Paulo / SP", location.origin)
}

// TestLocationRules_International verifies country-level facilities carry
// no locality and title-case the country name.
func TestLocationRules_International(t *testing.T) {
	unit := correiosUnit{
		Name: "estados unidos",
		Type: "País",
	}

	location := locationRules(unit)

	assert.Nil(t, location.locality)
	assert.Equal(t, "Estados Unidos", location.origin)
}

// TestParseCategory covers the classification fallbacks and the embedded
// service-code uppercasing rule.
func TestParseCategory(t *testing.T) {
	tests := []struct {
		name                string
		postalType          *postalType
		expectedName        string
		expectedDescription string
	}{
		{
			name:                "Absent Classification",
			postalType:          nil,
			expectedName:        "Desconhecido",
			expectedDescription: "Não identificado",
		},
		{
			name:                "Empty Fields Fall Back To Sentinels",
			postalType:          &postalType{},
			expectedName:        "Desconhecido",
			expectedDescription: "Não Identificado",
		},
		{
			name: "Two-Letter Service Code Uppercased",
			postalType: &postalType{
				Category:    "ENCOMENDA PAC",
				Description: "etiqueta logica se",
			},
			expectedName:        "Encomenda Pac",
			expectedDescription: "Etiqueta Logica SE",
		},
		{
			name: "Unidentified Description Left Alone",
			postalType: &postalType{
				Category:    "DESCONHECIDO",
				Description: "não identificado",
			},
			expectedName:        "Desconhecido",
			expectedDescription: "Não Identificado",
		},
		{
			name: "International Description Left Alone",
			postalType: &postalType{
				Category:    "ENCOMENDA INTERNACIONAL",
				Description: "objeto internacional ei",
			},
			expectedName:        "Encomenda Internacional",
			expectedDescription: "Objeto Internacional Ei",
		},
		{
			name: "No Two-Letter Token Leaves Description Unchanged",
			postalType: &postalType{
				Category:    "SEDEX",
				Description: "etiqueta logica sedex",
			},
			expectedName:        "Sedex",
			expectedDescription: "Etiqueta Logica Sedex",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			category := parseCategory(tt.postalType)

			assert.Equal(t, tt.expectedName, category.Name)
			assert.Equal(t, tt.expectedDescription, category.Description)
		})
	}
}
