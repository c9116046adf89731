package graphql

import (
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
)

const schemaSDL = `
type Query {
  health: Boolean!
  carriers: [String!]!
  serviceTypes: [ServiceType!]!
  destination(postalCode: String!): Destination
  freeShippingEligibility(subtotal: Float!, threshold: Float): Boolean!
  estimateShipping(input: EstimateShippingInput!): EstimateShippingResult!
}

enum ServiceType {
  ECONOMY
  EXPRESS
}

enum Tier {
  LOCAL
  REGIONAL
  NACIONAL
}

type Destination {
  postalCode: String!
  state: String!
  region: String!
  tier: Tier!
}

input ItemInput {
  weightGrams: Float
  heightCm: Float!
  widthCm: Float!
  lengthCm: Float!
}

input EstimateShippingInput {
  postalCode: String!
  items: [ItemInput!]!
  subtotal: Float
  carriers: [String!]
}

type RateOption {
  rateId: String!
  carrier: String!
  service: String!
  name: String!
  serviceType: ServiceType!
  price: Float!
  currency: String!
  days: Int!
  expiresAt: String!
  freeOfCharge: Boolean!
}

type Error {
  code: String!
  message: String!
  carrier: String
}

type ResponseMetadata {
  requestId: String!
  durationMs: Int!
  degraded: Boolean!
}

type EstimateShippingResult {
  success: Boolean!
  quoteIds: [String!]!
  destination: Destination
  freeShipping: Boolean!
  rates: [RateOption!]!
  errors: [Error!]
  metadata: ResponseMetadata!
}
`

var schema = gqlparser.MustLoadSchema(&ast.Source{Name: "schema.graphql", Input: schemaSDL})
