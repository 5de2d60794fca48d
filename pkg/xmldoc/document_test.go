package xmldoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `<?xml version="1.0" encoding="UTF-8"?>
<Mcu xmlns="http://mcd.rou.st.com/modules.php?name=mcu" RefName="STM32F407V(E-G)Tx" Package="LQFP100">
	<Core>ARM Cortex-M4</Core>
	<Ram>192</Ram>
	<Ram>192</Ram>
	<Pin Name="PA9" Type="I/O">
		<Signal Name="USART1_TX"/>
		<Signal Name="TIM1_CH2"/>
	</Pin>
	<Pin Name="PA9" Type="I/O">
		<Signal Name="USART1_TX"/>
		<Signal Name="TIM1_CH2"/>
	</Pin>
	<Pin Name="VDD" Type="Power"/>
</Mcu>`

func TestQuery(t *testing.T) {
	doc, err := ParseString("sample.xml", sample)
	require.NoError(t, err)

	cores, err := doc.Query("//Core")
	require.NoError(t, err)
	require.Len(t, cores, 1)
	assert.Equal(t, "ARM Cortex-M4", cores[0].Text())

	rams, err := doc.Query("//Ram")
	require.NoError(t, err)
	assert.Len(t, rams, 2)

	pins, err := doc.Query("//Pin[@Type='I/O'][starts-with(@Name,'P')]")
	require.NoError(t, err)
	require.Len(t, pins, 2)
	assert.Equal(t, "PA9", pins[0].Attr("Name"))
	assert.Equal(t, "I/O", pins[0].Attr("Type"))
	assert.Empty(t, pins[0].Attr("Position"))
	assert.Len(t, pins[0].Children(), 2)
	assert.Equal(t, "TIM1_CH2", pins[0].Child(1).Attr("Name"))
	assert.Nil(t, pins[0].Child(2))

	mcu, err := doc.Query("//*[@Package]")
	require.NoError(t, err)
	require.Len(t, mcu, 1)
	assert.Equal(t, "LQFP100", mcu[0].Attr("Package"))
}

func TestCompactQuery(t *testing.T) {
	doc, err := ParseString("sample.xml", sample)
	require.NoError(t, err)

	signals, err := doc.CompactQuery("//Pin[@Name='PA9']")
	require.NoError(t, err)
	assert.Len(t, signals, 1)

	signals, err = doc.CompactQuery("//Pin[@Name='PA9']/Signal")
	require.NoError(t, err)
	require.Len(t, signals, 2)
	assert.Equal(t, "USART1_TX", signals[0].Attr("Name"))
	assert.Equal(t, "TIM1_CH2", signals[1].Attr("Name"))
}

func TestQueryInvalidExpression(t *testing.T) {
	doc, err := ParseString("sample.xml", sample)
	require.NoError(t, err)

	_, err = doc.Query("//Pin[")
	assert.Error(t, err)
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile("does-not-exist.xml")
	assert.Error(t, err)
}
