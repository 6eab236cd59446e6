package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"catalogo_equipamentos/internal/domain/entities"
	"catalogo_equipamentos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultEquipmentsTableName = "equipments"

// DynamoDBAPI is the subset of *dynamodb.Client used by the repository.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	dynamodb.ScanAPIClient
}

type equipmentItem struct {
	ID          string  `dynamodbav:"id"`
	Type        string  `dynamodbav:"type"`
	Marca       string  `dynamodbav:"marca"`
	Modelo      string  `dynamodbav:"modelo"`
	MarcaFold   string  `dynamodbav:"marca_fold"`
	ModeloFold  string  `dynamodbav:"modelo_fold"`
	Notas       *string `dynamodbav:"notas,omitempty"`
	DataFabrico *string `dynamodbav:"data_fabrico,omitempty"`
	Photo       *string `dynamodbav:"photo,omitempty"`
	PhotoName   *string `dynamodbav:"photo_name,omitempty"`
	PDF         *string `dynamodbav:"pdf,omitempty"`
	PDFName     *string `dynamodbav:"pdf_name,omitempty"`

	Energia               *string  `dynamodbav:"energia,omitempty"`
	Potencia              *float64 `dynamodbav:"potencia,omitempty"`
	RendimentoBase        *float64 `dynamodbav:"rendimento_base,omitempty"`
	RendimentoCorrigido   *float64 `dynamodbav:"rendimento_corrigido,omitempty"`
	Volume                *float64 `dynamodbav:"volume,omitempty"`
	Rendimento            *float64 `dynamodbav:"rendimento,omitempty"`
	TemQPR                *bool    `dynamodbav:"tem_qpr,omitempty"`
	ValorQPR              *float64 `dynamodbav:"valor_qpr,omitempty"`
	PotenciaArrefecimento *float64 `dynamodbav:"potencia_arrefecimento,omitempty"`
	PotenciaAquecimento   *float64 `dynamodbav:"potencia_aquecimento,omitempty"`
	Seer                  *float64 `dynamodbav:"seer,omitempty"`
	Scop                  *float64 `dynamodbav:"scop,omitempty"`
	Cop                   *float64 `dynamodbav:"cop,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// EquipmentDynamoRepository persists Equipment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Writes replace the whole item, so attributes of a previous type disappear.
// Listing scans the table with a server-side filter and sorts in memory; the
// catalog is small enough for that.
type EquipmentDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IEquipmentRepository = (*EquipmentDynamoRepository)(nil)

func NewEquipmentDynamoRepository(ddb DynamoDBAPI, tableName string) *EquipmentDynamoRepository {
	if tableName == "" {
		tableName = defaultEquipmentsTableName
	}
	return &EquipmentDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *EquipmentDynamoRepository) FindMany(ctx context.Context, filter interfaces.EquipmentFilter, skip, take int) ([]entities.Equipment, int, error) {
	input := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}

	var (
		conds  []string
		names  = map[string]string{}
		values = map[string]types.AttributeValue{}
	)
	if filter.Type != "" {
		conds = append(conds, "#type = :type")
		names["#type"] = "type"
		values[":type"] = &types.AttributeValueMemberS{Value: string(filter.Type)}
	}
	if filter.Text != "" {
		conds = append(conds, "(contains(#marca_fold, :q) OR contains(#modelo_fold, :q))")
		names["#marca_fold"] = "marca_fold"
		names["#modelo_fold"] = "modelo_fold"
		values[":q"] = &types.AttributeValueMemberS{Value: fold(filter.Text)}
	}
	if len(conds) > 0 {
		input.FilterExpression = aws.String(strings.Join(conds, " AND "))
		input.ExpressionAttributeNames = names
		input.ExpressionAttributeValues = values
	}

	var all []entities.Equipment
	p := dynamodb.NewScanPaginator(r.ddb, input)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, 0, err
		}
		for _, av := range page.Items {
			var it equipmentItem
			if err := attributevalue.UnmarshalMap(av, &it); err != nil {
				return nil, 0, err
			}
			e, err := fromEquipmentItem(it)
			if err != nil {
				return nil, 0, err
			}
			all = append(all, e)
		}
	}

	sortEquipments(all)
	return paginate(all, skip, take), len(all), nil
}

func (r *EquipmentDynamoRepository) FindByID(ctx context.Context, id string) (entities.Equipment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Equipment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Equipment{}, nil
	}

	var it equipmentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Equipment{}, err
	}
	return fromEquipmentItem(it)
}

func (r *EquipmentDynamoRepository) Insert(ctx context.Context, e entities.Equipment) (entities.Equipment, error) {
	if err := r.put(ctx, e, "attribute_not_exists(#id)"); err != nil {
		return entities.Equipment{}, err
	}
	return e, nil
}

func (r *EquipmentDynamoRepository) Update(ctx context.Context, e entities.Equipment) (entities.Equipment, error) {
	err := r.put(ctx, e, "attribute_exists(#id)")
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Equipment{}, nil
		}
		return entities.Equipment{}, err
	}
	return e, nil
}

func (r *EquipmentDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

func (r *EquipmentDynamoRepository) put(ctx context.Context, e entities.Equipment, condition string) error {
	av, err := attributevalue.MarshalMap(toEquipmentItem(e))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String(condition),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

func toEquipmentItem(e entities.Equipment) equipmentItem {
	t := e.Technical()
	return equipmentItem{
		ID:                    e.ID,
		Type:                  string(e.Type),
		Marca:                 e.Marca,
		Modelo:                e.Modelo,
		MarcaFold:             fold(e.Marca),
		ModeloFold:            fold(e.Modelo),
		Notas:                 e.Notas,
		DataFabrico:           e.DataFabrico,
		Photo:                 e.Photo,
		PhotoName:             e.PhotoName,
		PDF:                   e.PDF,
		PDFName:               e.PDFName,
		Energia:               t.Energia,
		Potencia:              t.Potencia,
		RendimentoBase:        t.RendimentoBase,
		RendimentoCorrigido:   t.RendimentoCorrigido,
		Volume:                t.Volume,
		Rendimento:            t.Rendimento,
		TemQPR:                t.TemQPR,
		ValorQPR:              t.ValorQPR,
		PotenciaArrefecimento: t.PotenciaArrefecimento,
		PotenciaAquecimento:   t.PotenciaAquecimento,
		Seer:                  t.Seer,
		Scop:                  t.Scop,
		Cop:                   t.Cop,
		CreatedAt:             formatTimestamp(e.CreatedAt),
		UpdatedAt:             formatTimestamp(e.UpdatedAt),
	}
}

func fromEquipmentItem(it equipmentItem) (entities.Equipment, error) {
	createdAt, err := parseTimestamp(it.CreatedAt)
	if err != nil {
		return entities.Equipment{}, fmt.Errorf("equipment %s created_at: %w", it.ID, err)
	}
	updatedAt, err := parseTimestamp(it.UpdatedAt)
	if err != nil {
		return entities.Equipment{}, fmt.Errorf("equipment %s updated_at: %w", it.ID, err)
	}

	t := entities.EquipmentType(it.Type)
	return entities.Equipment{
		ID: it.ID,
		EquipmentData: entities.EquipmentData{
			Type:        t,
			Marca:       it.Marca,
			Modelo:      it.Modelo,
			Notas:       it.Notas,
			DataFabrico: it.DataFabrico,
			Photo:       it.Photo,
			PhotoName:   it.PhotoName,
			PDF:         it.PDF,
			PDFName:     it.PDFName,
			Specs: entities.SpecsFromTechnical(t, entities.TechnicalFields{
				Energia:               it.Energia,
				Potencia:              it.Potencia,
				RendimentoBase:        it.RendimentoBase,
				RendimentoCorrigido:   it.RendimentoCorrigido,
				Volume:                it.Volume,
				Rendimento:            it.Rendimento,
				TemQPR:                it.TemQPR,
				ValorQPR:              it.ValorQPR,
				PotenciaArrefecimento: it.PotenciaArrefecimento,
				PotenciaAquecimento:   it.PotenciaAquecimento,
				Seer:                  it.Seer,
				Scop:                  it.Scop,
				Cop:                   it.Cop,
			}),
		},
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}
